package judging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/quickmadu/internal/judge"
	judgeMocks "github.com/KirkDiggler/quickmadu/internal/judge/mocks"
	"github.com/KirkDiggler/quickmadu/internal/models"
)

type JudgingServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockClient *judgeMocks.MockClient
	svc        Service
	ctx        context.Context
}

func (s *JudgingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClient = judgeMocks.NewMockClient(s.mockCtrl)
	s.ctx = context.Background()

	svc, err := New(&Config{
		Client:  s.mockClient,
		Timeout: time.Second,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func TestJudgingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JudgingServiceTestSuite))
}

// approve builds a judge verdict that accepts every submitted word. Points
// in the verdict are deliberately nonsense to prove totals are recomputed
// server-side.
func approve(submissions []*judge.Submission, categories []string) *judge.ValidateWordsOutput {
	out := &judge.ValidateWordsOutput{}
	for _, sub := range submissions {
		pr := &models.PlayerRoundResult{PlayerID: sub.PlayerID, TotalRoundPoints: 999}
		for _, cat := range categories {
			pr.Results = append(pr.Results, &models.ValidationResult{
				Category: cat,
				Word:     sub.Words[cat],
				IsValid:  true,
				Points:   999,
			})
		}
		out.PlayerResults = append(out.PlayerResults, pr)
	}
	return out
}

func (s *JudgingServiceTestSuite) TestDuplicateValidWordsScoreFiveEach() {
	input := &ScoreRoundInput{
		Letter:     "A",
		Categories: []string{"Fruta"},
		Submissions: []*judge.Submission{
			{PlayerID: "p1", Words: map[string]string{"Fruta": "Apple"}},
			{PlayerID: "p2", Words: map[string]string{"Fruta": "apple"}},
		},
	}

	s.mockClient.EXPECT().
		ValidateWords(gomock.Any(), gomock.Any()).
		Return(approve(input.Submissions, input.Categories), nil)

	out, err := s.svc.ScoreRound(s.ctx, input)
	s.Require().NoError(err)
	s.Require().False(out.Fallback)
	s.Require().Len(out.Results, 2)

	s.Equal(PointsShared, out.Results[0].TotalRoundPoints)
	s.Equal(PointsShared, out.Results[1].TotalRoundPoints)
	s.True(out.Results[0].Results[0].IsValid)
}

func (s *JudgingServiceTestSuite) TestUniqueValidWordsScoreTen() {
	input := &ScoreRoundInput{
		Letter:     "A",
		Categories: []string{"Fruta"},
		Submissions: []*judge.Submission{
			{PlayerID: "p1", Words: map[string]string{"Fruta": "Apple"}},
			{PlayerID: "p2", Words: map[string]string{"Fruta": "Anchor"}},
		},
	}

	s.mockClient.EXPECT().
		ValidateWords(gomock.Any(), gomock.Any()).
		Return(approve(input.Submissions, input.Categories), nil)

	out, err := s.svc.ScoreRound(s.ctx, input)
	s.Require().NoError(err)
	s.Equal(PointsUnique, out.Results[0].TotalRoundPoints)
	s.Equal(PointsUnique, out.Results[1].TotalRoundPoints)
}

func (s *JudgingServiceTestSuite) TestWrongLetterScoresZeroEvenIfJudgeApproved() {
	input := &ScoreRoundInput{
		Letter:     "A",
		Categories: []string{"Fruta"},
		Submissions: []*judge.Submission{
			{PlayerID: "p1", Words: map[string]string{"Fruta": "Banana"}},
		},
	}

	s.mockClient.EXPECT().
		ValidateWords(gomock.Any(), gomock.Any()).
		Return(approve(input.Submissions, input.Categories), nil)

	out, err := s.svc.ScoreRound(s.ctx, input)
	s.Require().NoError(err)
	s.Equal(0, out.Results[0].TotalRoundPoints)
	s.False(out.Results[0].Results[0].IsValid)
}

func (s *JudgingServiceTestSuite) TestAccentedFirstLetterCounts() {
	input := &ScoreRoundInput{
		Letter:     "A",
		Categories: []string{"País"},
		Submissions: []*judge.Submission{
			{PlayerID: "p1", Words: map[string]string{"País": "África"}},
		},
	}

	s.mockClient.EXPECT().
		ValidateWords(gomock.Any(), gomock.Any()).
		Return(approve(input.Submissions, input.Categories), nil)

	out, err := s.svc.ScoreRound(s.ctx, input)
	s.Require().NoError(err)
	s.Equal(PointsUnique, out.Results[0].TotalRoundPoints)
}

func (s *JudgingServiceTestSuite) TestJudgeRejectionScoresZero() {
	input := &ScoreRoundInput{
		Letter:     "A",
		Categories: []string{"Fruta"},
		Submissions: []*judge.Submission{
			{PlayerID: "p1", Words: map[string]string{"Fruta": "Asphalt"}},
		},
	}

	s.mockClient.EXPECT().
		ValidateWords(gomock.Any(), gomock.Any()).
		Return(&judge.ValidateWordsOutput{
			PlayerResults: []*models.PlayerRoundResult{
				{
					PlayerID: "p1",
					Results: []*models.ValidationResult{
						{Category: "Fruta", Word: "Asphalt", IsValid: false, Reason: "not a fruit"},
					},
				},
			},
		}, nil)

	out, err := s.svc.ScoreRound(s.ctx, input)
	s.Require().NoError(err)
	s.Equal(0, out.Results[0].TotalRoundPoints)
	s.False(out.Results[0].Results[0].IsValid)
	s.Equal("not a fruit", out.Results[0].Results[0].Reason)
}

func (s *JudgingServiceTestSuite) TestVerdictMissingCategoryTreatedInvalid() {
	input := &ScoreRoundInput{
		Letter:     "A",
		Categories: []string{"Fruta", "País"},
		Submissions: []*judge.Submission{
			{PlayerID: "p1", Words: map[string]string{"Fruta": "Apple"}},
		},
	}

	// Judge only returns a verdict for Fruta
	s.mockClient.EXPECT().
		ValidateWords(gomock.Any(), gomock.Any()).
		Return(&judge.ValidateWordsOutput{
			PlayerResults: []*models.PlayerRoundResult{
				{
					PlayerID: "p1",
					Results: []*models.ValidationResult{
						{Category: "Fruta", Word: "Apple", IsValid: true},
					},
				},
			},
		}, nil)

	out, err := s.svc.ScoreRound(s.ctx, input)
	s.Require().NoError(err)
	s.Require().Len(out.Results[0].Results, 2)
	s.Equal(PointsUnique, out.Results[0].TotalRoundPoints)
	s.False(out.Results[0].Results[1].IsValid)
}

func (s *JudgingServiceTestSuite) TestJudgeErrorFallsBackToFlatScoring() {
	input := &ScoreRoundInput{
		Letter:     "M",
		Categories: []string{"Fruta", "País"},
		Submissions: []*judge.Submission{
			{PlayerID: "ana", Words: map[string]string{"Fruta": "Manzana", "País": "México"}},
			{PlayerID: "luis", Words: map[string]string{"Fruta": "   ", "País": ""}},
		},
	}

	s.mockClient.EXPECT().
		ValidateWords(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("judge exploded"))

	out, err := s.svc.ScoreRound(s.ctx, input)
	s.Require().NoError(err)
	s.True(out.Fallback)

	// Every non-empty trimmed answer scores flat points, no validation
	s.Equal(2*PointsFallback, out.Results[0].TotalRoundPoints)
	s.Equal(0, out.Results[1].TotalRoundPoints)
}

func (s *JudgingServiceTestSuite) TestFallbackIgnoresLetter() {
	input := &ScoreRoundInput{
		Letter:     "Z",
		Categories: []string{"Fruta"},
		Submissions: []*judge.Submission{
			{PlayerID: "p1", Words: map[string]string{"Fruta": "Apple"}},
		},
	}

	s.mockClient.EXPECT().
		ValidateWords(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("timeout"))

	out, err := s.svc.ScoreRound(s.ctx, input)
	s.Require().NoError(err)
	s.True(out.Fallback)
	s.Equal(PointsFallback, out.Results[0].TotalRoundPoints)
}

func (s *JudgingServiceTestSuite) TestEmptyVerdictFallsBack() {
	input := &ScoreRoundInput{
		Letter:     "A",
		Categories: []string{"Fruta"},
		Submissions: []*judge.Submission{
			{PlayerID: "p1", Words: map[string]string{"Fruta": "Apple"}},
		},
	}

	s.mockClient.EXPECT().
		ValidateWords(gomock.Any(), gomock.Any()).
		Return(&judge.ValidateWordsOutput{}, nil)

	out, err := s.svc.ScoreRound(s.ctx, input)
	s.Require().NoError(err)
	s.True(out.Fallback)
}

func (s *JudgingServiceTestSuite) TestNilClientAlwaysFallsBack() {
	svc, err := New(&Config{})
	s.Require().NoError(err)

	out, err := svc.ScoreRound(s.ctx, &ScoreRoundInput{
		Letter:     "A",
		Categories: []string{"Fruta"},
		Submissions: []*judge.Submission{
			{PlayerID: "p1", Words: map[string]string{"Fruta": "Apple"}},
		},
	})
	s.Require().NoError(err)
	s.True(out.Fallback)
	s.Equal(PointsFallback, out.Results[0].TotalRoundPoints)
}

func (s *JudgingServiceTestSuite) TestNilConfig() {
	_, err := New(nil)
	s.Require().Error(err)
}
