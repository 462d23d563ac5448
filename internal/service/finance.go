package service

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-sage/internal/finance"
	"github.com/Dan9191/finance-sage/internal/models"
	"github.com/Dan9191/finance-sage/internal/persona"
	"github.com/Dan9191/finance-sage/internal/strategy"
)

// Fixed texts of the finance endpoint
const (
	NoQuizRecommendation = "Please complete the risk assessment quiz for personalized recommendations."
	NoRecommendation     = "No recommendation generated."
	FailedRecommendation = "An error occurred while generating your recommendation."
	Unknown              = "Unknown"
)

// FinanceService turns a questionnaire submission into recommendations
type FinanceService struct {
	log *logrus.Logger
}

// NewFinanceService initializes a new finance service
func NewFinanceService(log *logrus.Logger) *FinanceService {
	return &FinanceService{log: log}
}

// NoQuizResponse is returned when the risk quiz has not been taken
func NoQuizResponse() models.FinanceResponse {
	return models.FinanceResponse{
		Success:        true,
		Recommendation: NoQuizRecommendation,
		Persona:        Unknown,
		IdealStrategy:  Unknown,
		Comparison:     Unknown,
	}
}

// FailureResponse is the body sent with HTTP 500
func FailureResponse() models.FinanceResponse {
	return models.FinanceResponse{
		Success:        false,
		Recommendation: FailedRecommendation,
		Persona:        Unknown,
		IdealStrategy:  Unknown,
		Comparison:     Unknown,
	}
}

// Recommend computes allocation, persona and strategy for one submission
func (s *FinanceService) Recommend(req models.FinanceRequest) models.FinanceResponse {
	if req.RiskQuiz == nil {
		s.log.Debug("Finance request without risk quiz")
		return NoQuizResponse()
	}

	quiz := req.RiskQuiz
	metrics := finance.Summarize(req.FinancialProfile)
	allocation := finance.Allocate(req.Investments)

	behaviour := quiz.Behaviour()
	if behaviour == "" {
		behaviour = behaviourFromAttitude(quiz.Attitude())
	}
	in := persona.ParseInput(quiz.AgeGroup(), metrics.DebtToIncomeBand, quiz.Knowledge(), behaviour, quiz.Reaction())
	p := persona.Classify(in)

	band := strategy.RiskBandFromAttitude(quiz.Attitude())
	strat := strategy.Build(band, quiz.AgeGroup(), allocation)

	s.log.WithFields(logrus.Fields{
		"age_group": quiz.AgeGroup(),
		"dti_band":  metrics.DebtToIncomeBand,
		"knowledge": in.Knowledge.String(),
		"behaviour": in.Behaviour.String(),
		"reaction":  in.Reaction.String(),
		"persona":   p.Code,
		"risk_band": band,
	}).Info("Recommendation computed")

	resp := models.FinanceResponse{
		Success:        true,
		Recommendation: recommendationText(strat),
		Persona:        fmt.Sprintf("%s – %s", p.Code, p.Label),
		IdealStrategy:  idealStrategyText(strat),
		Comparison:     strat.ComparisonNote,
		Strategies: &models.Strategies{
			Persona:    p,
			Strategy:   strat,
			Allocation: allocation,
			Metrics:    metrics,
		},
	}

	if resp.Recommendation == "" {
		resp.Recommendation = NoRecommendation
	}
	if resp.IdealStrategy == "" {
		resp.IdealStrategy = Unknown
	}
	if resp.Comparison == "" {
		resp.Comparison = Unknown
	}
	return resp
}

// EMI previews the installment of a single loan entry
func (s *FinanceService) EMI(req models.EMIRequest) models.EMIResponse {
	months := finance.TenureMonths(req.TenureValue.Float(), req.TenureType)
	return models.EMIResponse{
		EMI:          finance.EMI(req.Principal.Float(), req.InterestRate.Float(), months),
		TenureMonths: months,
	}
}

// behaviourFromAttitude is used when the quiz carries no explicit tendency
func behaviourFromAttitude(attitude string) string {
	switch strategy.RiskBandFromAttitude(attitude) {
	case strategy.Aggressive:
		return persona.Aggressive.String()
	case strategy.Conservative:
		return persona.Cautious.String()
	}
	if strings.TrimSpace(attitude) == "" {
		return ""
	}
	return persona.ModerateBehaviour.String()
}

func recommendationText(s models.Strategy) string {
	return fmt.Sprintf("%s strategy: compare your current allocation to the ideal for your profile. Consider shifting towards: %s.",
		s.Title, strategy.FormatAllocation(s.TargetAllocation))
}

func idealStrategyText(s models.Strategy) string {
	return fmt.Sprintf("Ideal instruments: %s. How they did it: %s",
		strings.Join(s.Instruments, ", "), s.Narrative)
}
