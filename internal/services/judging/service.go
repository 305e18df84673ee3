package judging

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/quickmadu/internal/judge"
	"github.com/KirkDiggler/quickmadu/internal/models"
)

// service implements the Service interface
type service struct {
	config *Config
}

// New creates a new judging service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &service{
		config: cfg,
	}, nil
}

// ScoreRound scores a finished round. The external judge decides whether a
// word fits its category; points and the starting-letter rule are enforced
// here so the scoring contract holds no matter what the model returns. Any
// judge failure degrades to flat scoring rather than leaving the round
// unscoreable.
func (s *service) ScoreRound(ctx context.Context, input *ScoreRoundInput) (*ScoreRoundOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if s.config.Client == nil {
		return s.fallback(input), nil
	}

	judgeCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	verdict, err := s.config.Client.ValidateWords(judgeCtx, &judge.ValidateWordsInput{
		Letter:      input.Letter,
		Categories:  input.Categories,
		Submissions: input.Submissions,
	})
	if err != nil || verdict == nil || len(verdict.PlayerResults) == 0 {
		log.Warn().Err(err).Str("letter", input.Letter).Msg("judge unavailable, scoring round with fallback")
		return s.fallback(input), nil
	}

	return &ScoreRoundOutput{
		Results: s.normalize(input, verdict),
	}, nil
}

// normalize rebuilds the scoring breakdown from the submissions, trusting
// the judge only for category fit. A word counts when the judge accepted
// it, it is non-empty, and it starts with the round letter; points are
// recomputed as 10 for an exclusive valid word, 5 each for a duplicated
// one, 0 otherwise.
func (s *service) normalize(input *ScoreRoundInput, verdict *judge.ValidateWordsOutput) []*models.PlayerRoundResult {
	// Index the judge's verdicts by player and category
	verdicts := make(map[string]map[string]*models.ValidationResult)
	for _, pr := range verdict.PlayerResults {
		byCategory := make(map[string]*models.ValidationResult, len(pr.Results))
		for _, res := range pr.Results {
			byCategory[res.Category] = res
		}
		verdicts[pr.PlayerID] = byCategory
	}

	accepted := func(sub *judge.Submission, category string) bool {
		word := sub.Words[category]
		if strings.TrimSpace(word) == "" || !startsWithLetter(word, input.Letter) {
			return false
		}
		res := verdicts[sub.PlayerID][category]
		return res != nil && res.IsValid
	}

	// Count how many players submitted each accepted word per category
	duplicates := make(map[string]map[string]int)
	for _, sub := range input.Submissions {
		for _, category := range input.Categories {
			if !accepted(sub, category) {
				continue
			}
			if duplicates[category] == nil {
				duplicates[category] = make(map[string]int)
			}
			duplicates[category][normalizeWord(sub.Words[category])]++
		}
	}

	results := make([]*models.PlayerRoundResult, 0, len(input.Submissions))
	for _, sub := range input.Submissions {
		playerResult := &models.PlayerRoundResult{
			PlayerID: sub.PlayerID,
			Results:  make([]*models.ValidationResult, 0, len(input.Categories)),
		}

		for _, category := range input.Categories {
			word := sub.Words[category]
			entry := &models.ValidationResult{
				Category: category,
				Word:     word,
			}
			if res := verdicts[sub.PlayerID][category]; res != nil {
				entry.Reason = res.Reason
			}

			if accepted(sub, category) {
				entry.IsValid = true
				if duplicates[category][normalizeWord(word)] > 1 {
					entry.Points = PointsShared
				} else {
					entry.Points = PointsUnique
				}
			}

			playerResult.TotalRoundPoints += entry.Points
			playerResult.Results = append(playerResult.Results, entry)
		}

		results = append(results, playerResult)
	}

	return results
}

// fallback awards a flat score for every non-empty trimmed answer, with no
// letter or category validation. Deliberately permissive: a round must
// never be unscoreable.
func (s *service) fallback(input *ScoreRoundInput) *ScoreRoundOutput {
	results := make([]*models.PlayerRoundResult, 0, len(input.Submissions))

	for _, sub := range input.Submissions {
		playerResult := &models.PlayerRoundResult{
			PlayerID: sub.PlayerID,
			Results:  make([]*models.ValidationResult, 0, len(input.Categories)),
		}

		for _, category := range input.Categories {
			word := sub.Words[category]
			entry := &models.ValidationResult{
				Category: category,
				Word:     word,
			}

			if strings.TrimSpace(word) != "" {
				entry.IsValid = true
				entry.Points = PointsFallback
				entry.Reason = "judge unavailable, answer auto-approved"
			}

			playerResult.TotalRoundPoints += entry.Points
			playerResult.Results = append(playerResult.Results, entry)
		}

		results = append(results, playerResult)
	}

	return &ScoreRoundOutput{
		Results:  results,
		Fallback: true,
	}
}

func normalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// startsWithLetter reports whether the word begins with the round letter,
// ignoring case and common Spanish accents
func startsWithLetter(word, letter string) bool {
	trimmed := strings.TrimSpace(word)
	if trimmed == "" || letter == "" {
		return false
	}

	first := foldRune(unicode.ToUpper([]rune(trimmed)[0]))
	want := foldRune(unicode.ToUpper([]rune(letter)[0]))

	return first == want
}

func foldRune(r rune) rune {
	switch r {
	case 'Á':
		return 'A'
	case 'É':
		return 'E'
	case 'Í':
		return 'I'
	case 'Ó':
		return 'O'
	case 'Ú', 'Ü':
		return 'U'
	}
	return r
}
