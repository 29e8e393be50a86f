package support

import "github.com/teatime-labs/moodgate/pkg/domain/emotion"

const (
	kindBreathing = "breathing"
	kindMusic     = "music"
	kindVideo     = "video"
)

func breath(title, subtitle string, steps ...string) WellnessOption {
	return WellnessOption{Kind: kindBreathing, Emoji: "🌬️", Title: title, Subtitle: subtitle, Steps: steps}
}

func music(title, subtitle string, steps ...string) WellnessOption {
	return WellnessOption{Kind: kindMusic, Emoji: "🎵", Title: title, Subtitle: subtitle, Steps: steps}
}

func video(title, subtitle string, steps ...string) WellnessOption {
	return WellnessOption{Kind: kindVideo, Emoji: "🎬", Title: title, Subtitle: subtitle, Steps: steps}
}

var wellness = map[emotion.Emotion][]WellnessOption{
	emotion.Anxious: {
		breath("Gentle Breath Reset", "Guided breathing exercise",
			"Inhale slowly for 4 seconds…", "Hold gently for 4 seconds…", "Exhale slowly for 6 seconds…", "Repeat 3 times. You're doing great."),
		music("Soft ambient rain & piano", "Calming instrumental sounds",
			"Soft ambient rain sounds", "Gentle piano instrumentals", "Lo-fi chill beats", "Nature forest soundscapes"),
		video("Calming nature scenery", "Peaceful visual content",
			"Peaceful ocean waves footage", "Forest walk compilations", "Sunrise timelapses", "Gentle animal videos"),
	},
	emotion.Sad: {
		breath("Gentle Breath Reset", "Slow, calming breathing",
			"Take a deep breath in for 4 seconds…", "Hold gently for 2 seconds…", "Exhale slowly for 6 seconds…", "You're allowed to feel this."),
		music("Instrumental orchestral & acoustic guitar", "Warm, uplifting instrumentals",
			"Soft acoustic guitar melodies", "Warm instrumental piano", "Ambient nature sounds", "Uplifting orchestral pieces"),
		video("Uplifting short stories & motivational clips", "Heartwarming content",
			"Cute animal compilation videos", "Short motivational clips", "Beautiful nature scenery", "Heartwarming story shorts"),
	},
	emotion.Angry: {
		breath("Slow Release Breathing", "Release tension gradually",
			"Inhale deeply for 5 seconds…", "Tense your fists for 3 seconds…", "Exhale very slowly for 7 seconds…", "Feel the tension leaving your body."),
		music("Grounding ocean & bowl sounds", "Grounding audio",
			"Ocean waves ambient", "Tibetan singing bowls", "Rain on a window", "Deep forest sounds"),
		video("Satisfying & calming videos", "Visual grounding",
			"Satisfying art videos", "Nature drone footage", "Calm cooking compilations", "Peaceful garden tours"),
	},
	emotion.Overwhelmed: {
		breath("60-Second Reset", "Quick mindful pause",
			"Close your eyes gently.", "Breathe in for 4… out for 4…", "Focus only on your breath.", "You are safe right now."),
		music("Minimal calming sounds", "Simple, quiet audio",
			"Soft white noise", "Single piano notes", "Gentle wind chimes", "Quiet rain sounds"),
		video("Simple nature footage", "Minimal visual calm",
			"Slow river streams", "Cloud timelapse videos", "Gentle snowfall footage", "Quiet beach scenes"),
	},
	emotion.Stressed: {
		breath("Quick Calm Breathing", "4-4-6 breathing pattern",
			"Inhale for 4 seconds…", "Hold for 4 seconds…", "Exhale for 6 seconds…", "Repeat until you feel calmer."),
		music("Lo-fi & ambient beats", "Stress-relief sounds",
			"Lo-fi chill beats", "Ambient electronic", "Soft jazz piano", "Rain & thunder sounds"),
		video("Funny animal videos & comedy", "Light entertainment",
			"Funny animal videos", "Short comedy clips (clean)", "Satisfying art videos", "Nature drone footage"),
	},
	emotion.Frustrated: {
		breath("Tension Release Breathing", "Physical release exercise",
			"Inhale slowly for 5 seconds…", "Tense your fists for 3 seconds…", "Exhale and release everything…", "Feel the frustration melt away."),
		music("Calm jazz & acoustic", "Soothing melodies",
			"Calm jazz instrumentals", "Acoustic guitar medleys", "Waterfall ambience", "Gentle harp music"),
		video("Satisfying compilation videos", "Visual stress relief",
			"Oddly satisfying compilations", "Pottery making videos", "Calligraphy clips", "Nature ASMR"),
	},
	emotion.Insecure: {
		breath("Confidence Breathing", "Grounding & empowering",
			"Stand or sit tall.", "Inhale confidence for 4 seconds…", "Hold your strength for 4…", "Exhale doubt for 6 seconds."),
		music("Empowering instrumentals", "Uplifting music",
			"Empowering instrumental tracks", "Positive acoustic playlists", "Motivational film scores", "Warm jazz piano"),
		video("Motivational talks & affirmations", "Confidence boost",
			"Short motivational talks", "Positive affirmation videos", "Inspiring transformation stories", "Beautiful sunrise compilations"),
	},
	emotion.Hopeless: {
		breath("Grounding Breath", "You are here. You matter.",
			"Place your feet on the ground.", "Inhale for 4… hold for 2…", "Exhale for 6 seconds…", "You are here. You matter."),
		music("Gentle hope instrumentals", "Soft warming sounds",
			"Soft sunrise instrumentals", "Warm acoustic lullabies", "Peaceful nature sounds", "Quiet meditation music"),
		video("Hope & redemption stories", "Inspiring content",
			"Comeback story compilations", "Acts of kindness videos", "Recovery journey shorts", "Nature renewal footage"),
	},
}

var defaultWellness = []WellnessOption{
	breath("Gentle Breath Reset", "Mindful breathing",
		"Inhale for 4 seconds…", "Hold for 4 seconds…", "Exhale for 6 seconds…", "Repeat 3 times."),
	music("Calming instrumentals", "Soothing sounds",
		"Lo-fi chill beats", "Soft piano instrumentals", "Nature ambient sounds", "Gentle acoustic guitar"),
	video("Uplifting content", "Feel-good videos",
		"Cute animal videos", "Nature compilations", "Motivational shorts", "Peaceful scenery"),
}

func WellnessFor(e emotion.Emotion) []WellnessOption {
	if opts, ok := wellness[e]; ok {
		return opts
	}
	return defaultWellness
}
