package chat

// Pools of source material the generators draw from. Values are chosen to
// read plausibly in rendered output; none correspond to real people, cases
// or files.

var platforms = []string{
	"WhatsApp",
	"Telegram",
	"Signal",
	"Messenger",
	"Snapchat",
	"Instagram",
}

var firstNames = []string{
	"Aroha", "Blake", "Caleb", "Daniela", "Eli", "Frances", "George",
	"Holly", "Isaac", "Jordan", "Kiri", "Liam", "Mereana", "Nikau",
	"Olivia", "Patrick", "Quinn", "Ruby", "Sione", "Tama", "Vanessa",
	"Wiremu", "Zoe",
}

var lastNames = []string{
	"Anderson", "Bennett", "Campbell", "Douglas", "Edwards", "Fletcher",
	"Graham", "Henare", "Irwin", "Johnson", "Kereama", "Lawson",
	"Mitchell", "Ngata", "O'Brien", "Parata", "Reid", "Stewart",
	"Thompson", "Walker", "Young",
}

var aliasSeeds = []string{
	"shadowfax", "kea_rider", "nightowl", "southpaw", "driftking",
	"mokopuna", "stormcloud", "blacksand", "tuatara", "quickfix",
	"wanderer", "halfpipe", "seabreeze", "matagi", "longwhite",
}

var aliasSuffixes = []string{
	"_nz", "_og", "x", "_01", "zz", "_real",
}

var operationNames = []string{
	"Operation Kingfisher", "Operation Tasman", "Operation Harrier",
	"Operation Bluegum", "Operation Lantern", "Operation Karaka",
	"Operation Riverstone", "Operation Westerly",
}

var messageTexts = []string{
	"hey you around?",
	"yeah sweet, what time?",
	"can't talk now, call you later",
	"did you sort that thing out",
	"all good on my end",
	"nah bro that's not what happened",
	"send it through when you can",
	"meet at the usual spot",
	"running late, give me 20",
	"got it, cheers",
	"who else knows about this?",
	"delete this after you read it",
	"lol no way",
	"check the photo I sent",
	"don't worry about it",
	"are you still keen for saturday?",
	"he never showed up",
	"ok leaving now",
}

// styleColors maps a style identifier to the hex colour a participant is
// rendered with. Keys must stay in step with styleAvatars.
var styleColors = map[int]string{
	1:  "#e6194b",
	2:  "#3cb44b",
	3:  "#4363d8",
	4:  "#f58231",
	5:  "#911eb4",
	6:  "#46f0f0",
	7:  "#f032e6",
	8:  "#bcf60c",
	9:  "#fabebe",
	10: "#008080",
	11: "#9a6324",
	12: "#800000",
}

var styleAvatars = map[int]string{
	1:  "assets/avatars/avatar_01.png",
	2:  "assets/avatars/avatar_02.png",
	3:  "assets/avatars/avatar_03.png",
	4:  "assets/avatars/avatar_04.png",
	5:  "assets/avatars/avatar_05.png",
	6:  "assets/avatars/avatar_06.png",
	7:  "assets/avatars/avatar_07.png",
	8:  "assets/avatars/avatar_08.png",
	9:  "assets/avatars/avatar_09.png",
	10: "assets/avatars/avatar_10.png",
	11: "assets/avatars/avatar_11.png",
	12: "assets/avatars/avatar_12.png",
}

// attachmentKinds fixes the draw order over attachmentTypes so seeded runs
// stay reproducible (map iteration order is not).
var attachmentKinds = []string{"image", "video", "audio", "link", "file"}

// attachmentTypes maps an attachment kind to its sample file pool.
var attachmentTypes = map[string]struct {
	Path  string
	Files []string
}{
	"image": {
		Path:  "assets/attachments/images",
		Files: []string{"IMG_2041.jpg", "IMG_3317.jpg", "photo_crop.png", "screenshot_044.png"},
	},
	"video": {
		Path:  "assets/attachments/videos",
		Files: []string{"VID_0193.mp4", "clip_short.mov"},
	},
	"audio": {
		Path:  "assets/attachments/audio",
		Files: []string{"voice_note_12.ogg", "recording_03.m4a"},
	},
	"link": {
		Path:  "assets/attachments/links",
		Files: []string{"shared_link_1.url", "shared_link_2.url"},
	},
	"file": {
		Path:  "assets/attachments/files",
		Files: []string{"statement.pdf", "list.xlsx", "notes.txt"},
	},
}
