package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/touchlinehq/touchline/internal/domain/match"
)

// StatsExtractor turns a stats screenshot (a Veo export or a phone photo of a
// scoreboard sheet) into labeled values. Labels come back as the vendor
// prints them; normalization happens downstream.
type StatsExtractor interface {
	ExtractStats(ctx context.Context, image []byte, contentType string) (map[string]any, error)
}

type ExtractionService struct {
	extractor StatsExtractor
	matches   *MatchService
}

func NewExtractionService(extractor StatsExtractor, matches *MatchService) *ExtractionService {
	return &ExtractionService{
		extractor: extractor,
		matches:   matches,
	}
}

// StatsFromImage extracts labeled values from the image and applies them to
// the match as a regular stats update, so extracted zeros and blanks never
// clobber values the coach already typed in.
func (s *ExtractionService) StatsFromImage(ctx context.Context, matchID string, image []byte, contentType string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExtractionService.StatsFromImage")
	defer span.End()

	if s.extractor == nil {
		return match.Match{}, fmt.Errorf("%w: stats extraction is not configured", ErrDependencyUnavailable)
	}
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if len(image) == 0 {
		return match.Match{}, fmt.Errorf("%w: image payload is required", ErrInvalidInput)
	}

	extracted, err := s.extractor.ExtractStats(ctx, image, contentType)
	if err != nil {
		return match.Match{}, fmt.Errorf("%w: extract stats from image: %v", ErrDependencyUnavailable, err)
	}
	if len(extracted) == 0 {
		return match.Match{}, fmt.Errorf("%w: no stats recognized in image", ErrInvalidInput)
	}

	return s.matches.UpdateMatchStats(ctx, UpdateMatchStatsInput{
		MatchID: matchID,
		Stats:   extracted,
	})
}
