package post

import (
	"math/rand/v2"

	"github.com/teatime-labs/moodgate/pkg/domain/emotion"
)

var anonymousNames = map[emotion.Emotion][]string{
	emotion.Sad:         {"CryingIn4K", "SadButHD", "EmotionalDamage.exe", "TearDropCoder", "MelancholyMuse"},
	emotion.Anxious:     {"OverthinkingCEO", "PanicAtTheEverything", "AnxietyArchitect", "WorriedWanderer"},
	emotion.Overwhelmed: {"78OpenTabs", "Human404", "SystemOverload", "BrainBuffering"},
	emotion.Frustrated:  {"InternallyScreaming", "RageButPolite", "FrustratedPixel", "BugInMyCode"},
	emotion.Angry:       {"VillainOriginStory", "RageQuitCore", "FuryInProgress", "StormBrewing"},
	emotion.Hopeless:    {"LowBatteryHuman", "PlotArmorMissing", "HopeOnVacation", "GlitchedOptimist"},
	emotion.Stressed:    {"DeadlineDinosaur", "GPAOnLifeSupport", "CaffeineAndChaos", "StressedButDressed"},
	emotion.Insecure:    {"SelfDoubtProMax", "MirrorAvoider", "UncertainUnicorn", "ShadowSelf"},
	emotion.Happy:       {"SerotoninDealer", "MainCharacterUnlocked", "JoyOverflow", "SunshineInABottle"},
	emotion.Hopeful:     {"GlowUpPending", "RedemptionArc", "HopeEngine", "RisingPhoenix"},
	emotion.Confused:    {"Brain404Error", "LostInTheSauce", "ConfusedCactus", "WhatIsHappening"},
	emotion.Reflective:  {"MidnightThoughts.exe", "EmotionalArchivist", "DeepDiver", "SoulSearcher"},
	emotion.Neutral:     {"DefaultSettings", "ExistingRespectfully", "JustVibing", "ChillPill"},
	emotion.Excited:     {"HypeTrainDriver", "SparklingEnergy", "BubblyBot", "EuphoriaCoder"},
}

// AnonymousNames returns the pseudonym pool for an emotion, falling back to
// the Neutral pool.
func AnonymousNames(e emotion.Emotion) []string {
	if names, ok := anonymousNames[e]; ok {
		return names
	}
	return anonymousNames[emotion.Neutral]
}

func RandomAnonymousName(e emotion.Emotion) string {
	names := AnonymousNames(e)
	return names[rand.IntN(len(names))]
}
