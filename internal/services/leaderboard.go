package services

import (
	"context"
	"math"
	"sort"

	"claymaster/internal/logger"
	"claymaster/internal/models"
	"claymaster/internal/repository"
)

// LeaderboardServiceRepository defines the repository methods needed by LeaderboardService
type LeaderboardServiceRepository interface {
	repository.ParticipantRepository
	repository.SubmissionRepository
}

// LeaderboardService derives podium standings from the scoring ledger.
// It is stateless; standings are recomputed on every read.
type LeaderboardService struct {
	log  logger.Logger
	repo LeaderboardServiceRepository
}

// NewLeaderboardService creates a new LeaderboardService
func NewLeaderboardService(log logger.Logger, repo LeaderboardServiceRepository) *LeaderboardService {
	return &LeaderboardService{log: log, repo: repo}
}

// Standing is one participant's leaderboard entry
type Standing struct {
	Participant models.Participant `json:"participant"`
	TotalScore  float64            `json:"total_score"`
}

// Standings computes the leaderboard: for each participant, the mean audience
// score of each of their submissions (0 when unrated) summed across rounds and
// rounded to one decimal, sorted descending. Note this is a sum of per-round
// averages, not an overall average: participants in more rounds can outrank
// higher per-round quality. Ties keep roster order.
func (s *LeaderboardService) Standings(ctx context.Context) ([]Standing, error) {
	participants, err := s.repo.ListParticipants(ctx)
	if err != nil {
		return nil, err
	}
	submissions, err := s.repo.ListSubmissions(ctx)
	if err != nil {
		return nil, err
	}

	byParticipant := make(map[string][]models.Submission)
	for _, sub := range submissions {
		byParticipant[sub.ParticipantID] = append(byParticipant[sub.ParticipantID], sub)
	}

	standings := make([]Standing, 0, len(participants))
	for _, p := range participants {
		var total float64
		for _, sub := range byParticipant[p.ID] {
			if len(sub.Scores) == 0 {
				continue
			}
			var sum int
			for _, score := range sub.Scores {
				sum += score
			}
			total += float64(sum) / float64(len(sub.Scores))
		}
		standings = append(standings, Standing{
			Participant: p,
			TotalScore:  math.Round(total*10) / 10,
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].TotalScore > standings[j].TotalScore
	})
	return standings, nil
}
