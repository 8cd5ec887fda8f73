package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/farouk24967/dashbord-genrator/internal/dashboard"
	"github.com/farouk24967/dashbord-genrator/internal/observability/metrics"
	"github.com/farouk24967/dashbord-genrator/pkg/logging"
)

// Service is the generation gateway: one outbound call to the text model,
// with every failure path converted to the built-in fallback dataset.
// Generate never returns an error to callers.
type Service struct {
	client  TextClient
	logger  *logging.Logger
	metrics *metrics.GenerationMetrics
}

// NewService creates a generation service. A nil client means no credential
// is configured; every Generate call then serves the fallback dataset.
func NewService(client TextClient, logger *logging.Logger, m *metrics.GenerationMetrics) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		client:  client,
		logger:  logger,
		metrics: m,
	}
}

// Generate produces a dashboard dataset for the clinic. On success the
// returned dataset carries the caller-supplied clinic name and specialty
// verbatim; on any failure the fallback dataset is returned instead. There is
// no retry and no partial result.
func (s *Service) Generate(ctx context.Context, clinicName string, specialty dashboard.Specialty) *dashboard.Dataset {
	start := time.Now()
	ds, err := s.generate(ctx, clinicName, specialty)
	if err != nil {
		reason := failureReason(err)
		s.logger.Warn("generation failed, serving fallback dataset",
			"clinic", clinicName,
			"specialty", string(specialty),
			"reason", reason,
			"error", err,
		)
		s.metrics.ObserveGeneration(reason, time.Since(start).Seconds())
		return FallbackDataset(clinicName, specialty)
	}

	s.logger.Info("generation succeeded",
		"clinic", clinicName,
		"specialty", string(specialty),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	s.metrics.ObserveGeneration("ok", time.Since(start).Seconds())
	return ds
}

func (s *Service) generate(ctx context.Context, clinicName string, specialty dashboard.Specialty) (*dashboard.Dataset, error) {
	if s.client == nil {
		return nil, ErrMissingCredential
	}

	text, err := s.client.GenerateJSON(ctx, buildPrompt(clinicName, specialty))
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, ErrEmptyResponse
	}

	var ds dashboard.Dataset
	if err := json.Unmarshal([]byte(text), &ds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if !ds.Complete() {
		return nil, ErrSchemaMismatch
	}

	// The model is not trusted to echo these back correctly.
	ds.ClinicName = clinicName
	ds.Specialty = specialty
	return &ds, nil
}
