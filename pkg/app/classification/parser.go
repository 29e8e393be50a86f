package classification

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"
	"github.com/teatime-labs/moodgate/pkg/domain/emotion"
	"github.com/teatime-labs/moodgate/pkg/domain/support"
	"github.com/valyala/fastjson"
)

var ErrMalformedArguments = errors.New("malformed classification arguments")

const defaultConfidence = 50

// ParseArguments reads the function-call arguments returned by the model.
// Emotion and riskLevel must be present and inside their enums, otherwise
// the whole payload is rejected. The remaining fields are repaired.
func ParseArguments(raw string) (emotion.Result, error) {
	var p fastjson.Parser
	v, err := p.Parse(raw)
	if err != nil {
		return emotion.Result{}, fmt.Errorf("%w: %v", ErrMalformedArguments, err)
	}
	if v.Type() != fastjson.TypeObject {
		return emotion.Result{}, fmt.Errorf("%w: expected object, got %s", ErrMalformedArguments, v.Type())
	}

	label := string(v.GetStringBytes("emotion"))
	e, ok := emotion.ParseFold(label)
	if !ok {
		return emotion.Result{}, fmt.Errorf("%w: emotion %q", ErrMalformedArguments, label)
	}
	level := strings.ToLower(strings.TrimSpace(string(v.GetStringBytes("riskLevel"))))
	risk, ok := emotion.ParseRiskLevel(level)
	if !ok {
		return emotion.Result{}, fmt.Errorf("%w: riskLevel %q", ErrMalformedArguments, level)
	}

	result := emotion.Result{
		Emotion:              e,
		Emoji:                strings.TrimSpace(string(v.GetStringBytes("emoji"))),
		Confidence:           confidence(v.Get("confidence")),
		Toxic:                v.GetBool("toxic"),
		RiskLevel:            risk,
		CognitiveDistortions: distortions(v.GetArray("cognitiveDistortions")),
		SupportMessage:       strings.TrimSpace(string(v.GetStringBytes("supportMessage"))),
	}
	if result.Emoji == "" {
		result.Emoji = e.Emoji()
	}
	return result, nil
}

func confidence(v *fastjson.Value) int {
	if v == nil || v.Type() != fastjson.TypeNumber {
		return defaultConfidence
	}
	f := v.GetFloat64()
	if math.IsNaN(f) {
		return defaultConfidence
	}
	return int(math.Round(math.Max(0, math.Min(100, f))))
}

func distortions(values []*fastjson.Value) []string {
	out := make([]string, 0, len(values))
	for _, item := range values {
		if item.Type() != fastjson.TypeString {
			continue
		}
		if name := support.NormalizeDistortion(string(item.GetStringBytes())); name != "" {
			out = append(out, name)
		}
	}
	return lo.Uniq(out)
}
