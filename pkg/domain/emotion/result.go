package emotion

// Result is what the classification gateway returns for a piece of text.
type Result struct {
	Emotion              Emotion   `json:"emotion"`
	Emoji                string    `json:"emoji"`
	Confidence           int       `json:"confidence"`
	Toxic                bool      `json:"toxic"`
	RiskLevel            RiskLevel `json:"riskLevel"`
	CognitiveDistortions []string  `json:"cognitiveDistortions"`
	SupportMessage       string    `json:"supportMessage"`
}

// Fallback is the result used when the model gives nothing usable.
func Fallback() Result {
	return Result{
		Emotion:              Neutral,
		Emoji:                Neutral.Emoji(),
		Confidence:           50,
		Toxic:                false,
		RiskLevel:            RiskLow,
		CognitiveDistortions: []string{},
		SupportMessage:       "",
	}
}

// WithCrisisOverride forces the critical level and the fixed crisis message.
// Every other field is left as classified.
func (r Result) WithCrisisOverride(message string) Result {
	r.RiskLevel = RiskCritical
	r.SupportMessage = message
	if r.CognitiveDistortions == nil {
		r.CognitiveDistortions = []string{}
	}
	return r
}
