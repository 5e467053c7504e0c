package services

import (
	"math/rand"
	"sync"

	"github.com/skip2/go-qrcode"

	"claymaster/internal/errors"
	"claymaster/internal/logger"
)

// nicknamePool is the fixed set of display nicknames handed to audience
// members. Uniqueness is NOT guaranteed: two voters can draw the same
// nickname, and their ballots will then merge.
var nicknamePool = []string{
	"黏土大師", "不土會死", "揉捏專家", "陶藝學徒", "色彩魔術師",
	"泥土守護者", "塑形工兵", "靈巧雙手", "土之呼吸", "創意泥巴人",
}

// AudienceService hands out voter nicknames and the join QR code
type AudienceService struct {
	log  logger.Logger
	pick func(n int) int

	mu      sync.RWMutex
	baseURL string
}

// NewAudienceService creates a new AudienceService
func NewAudienceService(log logger.Logger) *AudienceService {
	return &AudienceService{log: log, pick: rand.Intn}
}

// SetPicker sets a custom nickname draw function (for testing)
func (s *AudienceService) SetPicker(pick func(n int) int) {
	s.pick = pick
}

// SetBaseURL sets the externally reachable base URL used for the join QR code
func (s *AudienceService) SetBaseURL(url string) {
	s.mu.Lock()
	s.baseURL = url
	s.mu.Unlock()
}

// Join assigns a random nickname from the fixed pool. The nickname is the
// voter's scoring identity for the session and cannot be changed.
func (s *AudienceService) Join() string {
	nickname := nicknamePool[s.pick(len(nicknamePool))]
	s.log.Debug("Audience member joined", "nickname", nickname)
	return nickname
}

// Nicknames returns the fixed nickname pool
func (s *AudienceService) Nicknames() []string {
	return nicknamePool
}

// JoinQR renders a PNG QR code pointing audience members at the join page
func (s *AudienceService) JoinQR() ([]byte, error) {
	s.mu.RLock()
	baseURL := s.baseURL
	s.mu.RUnlock()

	if baseURL == "" {
		return nil, errors.Validation("base URL is not configured yet")
	}
	return qrcode.Encode(baseURL+"/audience", qrcode.Medium, 256)
}
