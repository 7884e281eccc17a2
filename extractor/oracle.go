package extractor

import (
	"context"
	"strings"
	"time"

	"github.com/shellasitanaya/backend-cv-analyzer/models"
)

// oracleStrategy delegates extraction to the generative oracle. Any
// oracle failure (network, quota, unparseable JSON) surfaces as an error
// so the orchestrator falls through to the NER+regex strategy.
type oracleStrategy struct {
	oracle ProfileOracle
	now    func() time.Time
}

func (s *oracleStrategy) Name() string { return "oracle" }

func (s *oracleStrategy) Extract(ctx context.Context, text string, requiredSkills []string) (*models.StructuredProfile, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	profile, err := s.oracle.ExtractProfile(ctx, text, requiredSkills, s.now().Year())
	if err != nil {
		return nil, err
	}

	profile.Skills = normalizeSkills(profile.Skills)
	return profile, nil
}
