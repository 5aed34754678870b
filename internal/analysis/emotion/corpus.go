package emotion

// Demo training corpus. Deliberately tiny: the model only needs to separate
// eight coarse emotional tones in short first-person messages.
var trainingTexts = []string{
	// sadness
	"i feel so sad and depressed today",
	"im feeling really down and miserable",
	"everything makes me want to cry",
	"i cant stop feeling sad",
	"my heart feels heavy and broken",
	"i feel empty inside",

	// anxiety
	"im so anxious about everything",
	"i cant stop worrying about the future",
	"my heart is racing and im scared",
	"i feel panicked and overwhelmed",
	"what if everything goes wrong",
	"im having anxiety attacks",

	// anger
	"im so angry and frustrated",
	"this makes me furious",
	"i cant control my anger",
	"everything irritates me",
	"im mad at everyone",
	"i feel so frustrated",

	// hopelessness
	"theres no hope for me",
	"nothing will ever get better",
	"im completely hopeless",
	"things will never improve",
	"i give up on everything",
	"theres no point in trying",

	// loneliness
	"i feel so alone in this world",
	"nobody understands me",
	"im all by myself",
	"i have no one to talk to",
	"everyone has abandoned me",
	"im isolated from everyone",

	// stress
	"im so stressed out",
	"the pressure is too much",
	"i cant handle all this stress",
	"im overwhelmed with work",
	"too many things to do",
	"im burning out",

	// fear
	"im really scared right now",
	"im terrified of what might happen",
	"i feel so afraid",
	"im frightened about everything",

	// neutral
	"hello how are you",
	"im doing okay today",
	"just checking in",
	"what can you help me with",
	"tell me about yourself",
	"good morning",
}

var trainingLabels = []string{
	Sadness, Sadness, Sadness, Sadness, Sadness, Sadness,
	Anxiety, Anxiety, Anxiety, Anxiety, Anxiety, Anxiety,
	Anger, Anger, Anger, Anger, Anger, Anger,
	Hopelessness, Hopelessness, Hopelessness, Hopelessness, Hopelessness, Hopelessness,
	Loneliness, Loneliness, Loneliness, Loneliness, Loneliness, Loneliness,
	Stress, Stress, Stress, Stress, Stress, Stress,
	Fear, Fear, Fear, Fear,
	Neutral, Neutral, Neutral, Neutral, Neutral, Neutral,
}
