package classification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/teatime-labs/moodgate/pkg/domain/emotion"
	"github.com/teatime-labs/moodgate/pkg/infra/crisis"
	"github.com/teatime-labs/moodgate/pkg/infra/prometheus"
	"github.com/teatime-labs/moodgate/pkg/infra/providers"
)

//go:generate mockery --name=Classifier --dir=. --output=./mocks --filename=classifier_mock.go --case=underscore
type Classifier interface {
	Classify(ctx context.Context, text string) (*emotion.Result, error)
}

type Options struct {
	ProviderName string
	// CrisisMessage replaces the support message whenever the keyword scan fires.
	CrisisMessage string
	// DegradeOnUpstreamError returns the fallback result instead of an error
	// when the model call fails for any reason other than rate limiting or
	// exhausted credits.
	DegradeOnUpstreamError bool
}

type classifier struct {
	logger         *logrus.Logger
	provider       providers.Client
	providerConfig *providers.Config
	detector       crisis.Detector
	opts           Options
}

func NewClassifier(
	logger *logrus.Logger,
	provider providers.Client,
	providerConfig *providers.Config,
	detector crisis.Detector,
	opts Options,
) Classifier {
	return &classifier{
		logger:         logger,
		provider:       provider,
		providerConfig: providerConfig,
		detector:       detector,
		opts:           opts,
	}
}

// Classify labels the text. The crisis keyword scan runs on the raw text and
// its verdict is applied after the model result is parsed, so a keyword hit
// always ends in a critical result, even when the model call fails.
func (c *classifier) Classify(ctx context.Context, text string) (*emotion.Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, emotion.ErrInvalidInput
	}

	crisisHit := c.detector.Match(text)
	result := emotion.Fallback()

	start := time.Now()
	call, err := c.provider.Classify(ctx, c.providerConfig, text)
	if prometheus.Config.EnableLatency {
		prometheus.RequestLatency.WithLabelValues("upstream").Observe(float64(time.Since(start).Milliseconds()))
	}

	log := c.logger.WithFields(logrus.Fields{
		"provider":   c.opts.ProviderName,
		"crisis_hit": crisisHit,
	})

	switch {
	case err != nil:
		kind, mapped := upstreamFailure(err)
		prometheus.UpstreamFailuresTotal.WithLabelValues(c.opts.ProviderName, kind).Inc()
		switch {
		case crisisHit:
			log.WithError(err).Warn("model call failed, returning crisis result")
		case mapped != nil:
			log.WithError(err).Warn("model call rejected")
			return nil, mapped
		case !c.opts.DegradeOnUpstreamError:
			log.WithError(err).Error("model call failed")
			return nil, fmt.Errorf("%w: %v", emotion.ErrUpstreamUnavailable, err)
		default:
			log.WithError(err).Warn("model call failed, returning fallback result")
		}
	case call == nil:
		prometheus.UpstreamFailuresTotal.WithLabelValues(c.opts.ProviderName, "malformed").Inc()
		log.Warn("model returned no function call, using fallback result")
	default:
		parsed, parseErr := ParseArguments(call.Arguments)
		if parseErr != nil {
			prometheus.UpstreamFailuresTotal.WithLabelValues(c.opts.ProviderName, "malformed").Inc()
			log.WithError(parseErr).Warn("unusable function arguments, using fallback result")
		} else {
			result = parsed
		}
	}

	if crisisHit {
		result = result.WithCrisisOverride(c.opts.CrisisMessage)
		prometheus.CrisisOverridesTotal.Inc()
	}

	prometheus.ClassificationsTotal.WithLabelValues(string(result.Emotion), string(result.RiskLevel)).Inc()
	log.WithFields(logrus.Fields{
		"emotion":    result.Emotion,
		"risk_level": result.RiskLevel,
		"toxic":      result.Toxic,
	}).Debug("text classified")

	return &result, nil
}

func upstreamFailure(err error) (string, error) {
	upstreamErr, ok := providers.AsUpstreamError(err)
	if !ok {
		return "error", nil
	}
	switch {
	case upstreamErr.RateLimited():
		return "rate_limited", fmt.Errorf("%w: %v", emotion.ErrUpstreamRateLimited, err)
	case upstreamErr.QuotaExhausted():
		return "quota_exhausted", fmt.Errorf("%w: %v", emotion.ErrUpstreamQuotaExhausted, err)
	default:
		return "error", nil
	}
}
