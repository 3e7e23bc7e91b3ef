package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bnema/rememble/internal/domain"
	"github.com/bnema/rememble/internal/ports"
	"go.uber.org/zap"
)

// Service is the connection store. It keeps the network in memory and writes
// the full network through the repository after every mutation. A failed
// write is logged and remembered but never rolls back the in-memory change.
type Service struct {
	repo    ports.NetworkRepository
	catalog ports.ProfileCatalog
	clock   ports.Clock
	logger  *zap.Logger

	maxNoteLength    int
	maxMessageLength int

	mu         sync.RWMutex
	network    domain.Network
	persistErr error
}

type Option func(*Service)

func WithMaxNoteLength(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxNoteLength = n
		}
	}
}

func WithMaxMessageLength(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxMessageLength = n
		}
	}
}

func NewService(repo ports.NetworkRepository, catalog ports.ProfileCatalog, clock ports.Clock, logger *zap.Logger, opts ...Option) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Service{
		repo:             repo,
		catalog:          catalog,
		clock:            clock,
		logger:           logger,
		maxNoteLength:    domain.DefaultMaxNoteLength,
		maxMessageLength: domain.DefaultMaxMessageLength,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) MaxNoteLength() int {
	return s.maxNoteLength
}

func (s *Service) MaxMessageLength() int {
	return s.maxMessageLength
}

// Load replaces the in-memory network with the persisted one. An unreadable
// store degrades to an empty network; the cause is reported, not returned.
func (s *Service) Load(ctx context.Context) LoadReport {
	network, err := s.repo.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.logger.Warn("load network failed, starting from an empty network", zap.Error(err))
		s.network = domain.Network{}
		return LoadReport{Fallback: true, Err: err}
	}

	s.network = network.Clone()
	s.logger.Debug("network loaded",
		zap.Int("connections", len(s.network.Connections)),
		zap.Int("sent_invitations", len(s.network.SentInvitations)))

	return LoadReport{}
}

func (s *Service) AddConnection(ctx context.Context, profile domain.Profile, privateNote, standardMessage string) (domain.Connection, error) {
	if err := profile.Validate(); err != nil {
		return domain.Connection{}, err
	}
	if err := s.validate(privateNote, standardMessage); err != nil {
		return domain.Connection{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addLocked(ctx, profile, privateNote, standardMessage)
}

func (s *Service) addLocked(ctx context.Context, profile domain.Profile, privateNote, standardMessage string) (domain.Connection, error) {
	if existing, ok := s.network.FindByProfile(profile.ID); ok {
		return domain.Connection{}, fmt.Errorf("%w: %s is connection %s", domain.ErrAlreadyConnected, profile.ID, existing.ID)
	}

	now := s.clock.Now().UTC().Truncate(time.Millisecond)
	conn := domain.Connection{
		ID:              domain.NewConnectionID(profile.ID, now),
		Profile:         profile.Clone(),
		PrivateNote:     privateNote,
		ConnectedAt:     now,
		StandardMessage: standardMessage,
	}

	s.network.Connections = append(s.network.Connections, conn)
	s.network.MarkInvited(profile.ID)
	s.persistLocked(ctx)

	s.logger.Info("connection added", zap.String("connection_id", string(conn.ID)), zap.String("profile_id", string(profile.ID)))

	return conn.Clone(), nil
}

// UpdateConnectionNote replaces the private note. An unknown id is a silent no-op.
func (s *Service) UpdateConnectionNote(ctx context.Context, id domain.ConnectionID, note string) error {
	if err := domain.ValidateNote(note, s.maxNoteLength); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.setNoteLocked(id, note)
	s.persistLocked(ctx)

	return nil
}

func (s *Service) DeleteConnectionNote(ctx context.Context, id domain.ConnectionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setNoteLocked(id, "")
	s.persistLocked(ctx)

	return nil
}

func (s *Service) setNoteLocked(id domain.ConnectionID, note string) {
	for i := range s.network.Connections {
		if s.network.Connections[i].ID == id {
			s.network.Connections[i].PrivateNote = note
			return
		}
	}

	s.logger.Debug("note change for unknown connection ignored", zap.String("connection_id", string(id)))
}

// DeleteConnection removes the connection and the sent-invitation marker of
// its profile.
func (s *Service) DeleteConnection(ctx context.Context, id domain.ConnectionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]domain.Connection, 0, len(s.network.Connections))
	var removed *domain.Connection
	for i := range s.network.Connections {
		if s.network.Connections[i].ID == id && removed == nil {
			conn := s.network.Connections[i]
			removed = &conn
			continue
		}
		kept = append(kept, s.network.Connections[i])
	}
	s.network.Connections = kept

	if removed != nil {
		s.network.UnmarkInvited(removed.Profile.ID)
		s.logger.Info("connection deleted", zap.String("connection_id", string(id)), zap.String("profile_id", string(removed.Profile.ID)))
	}

	s.persistLocked(ctx)

	return nil
}

func (s *Service) GetConnectionByID(id domain.ConnectionID) (domain.Connection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conn, ok := s.network.FindConnection(id)
	if !ok {
		return domain.Connection{}, fmt.Errorf("%w: %s", domain.ErrConnectionNotFound, id)
	}

	return conn.Clone(), nil
}

func (s *Service) ConnectionForProfile(profileID domain.ProfileID) (domain.Connection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conn, ok := s.network.FindByProfile(profileID)
	if !ok {
		return domain.Connection{}, false
	}

	return conn.Clone(), true
}

func (s *Service) Connections() []domain.Connection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.network.Clone().Connections
}

func (s *Service) Network() domain.Network {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.network.Clone()
}

func (s *Service) Profiles(ctx context.Context) ([]domain.Profile, error) {
	profiles, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	return profiles, nil
}

// GetProfileToInvite reads the catalog only; connection state is not consulted.
func (s *Service) GetProfileToInvite(ctx context.Context, profileID domain.ProfileID) (domain.Profile, error) {
	profile, err := s.catalog.GetByID(ctx, profileID)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("get profile %s: %w", profileID, err)
	}

	return profile, nil
}

func (s *Service) IsInvitationSent(profileID domain.ProfileID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.network.HasSentInvitation(profileID)
}

// Invite connects to a catalog profile. When the profile is already connected
// only its private note is updated, and only when one was given.
func (s *Service) Invite(ctx context.Context, cmd InviteCommand) (InviteResult, error) {
	if err := s.validate(cmd.note(), cmd.StandardMessage); err != nil {
		return InviteResult{}, err
	}

	profile, err := s.GetProfileToInvite(ctx, cmd.ProfileID)
	if err != nil {
		return InviteResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.network.FindByProfile(profile.ID); ok {
		if cmd.PrivateNote == nil {
			return InviteResult{Connection: existing.Clone(), AlreadyConnected: true}, nil
		}
		s.setNoteLocked(existing.ID, *cmd.PrivateNote)
		s.persistLocked(ctx)
		updated, _ := s.network.FindConnection(existing.ID)
		return InviteResult{Connection: updated.Clone(), AlreadyConnected: true, NoteUpdated: true}, nil
	}

	conn, err := s.addLocked(ctx, profile, cmd.note(), cmd.StandardMessage)
	if err != nil {
		return InviteResult{}, err
	}

	return InviteResult{Connection: conn}, nil
}

// PendingInvitations lists catalog invitations from profiles not yet connected.
func (s *Service) PendingInvitations(ctx context.Context) ([]domain.PendingInvitation, error) {
	invitations, err := s.catalog.PendingInvitations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending invitations: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	pending := make([]domain.PendingInvitation, 0, len(invitations))
	for _, invitation := range invitations {
		if _, connected := s.network.FindByProfile(invitation.Profile.ID); connected {
			continue
		}
		pending = append(pending, invitation)
	}

	return pending, nil
}

func (s *Service) AcceptInvitation(ctx context.Context, profileID domain.ProfileID, note string) (domain.Connection, error) {
	pending, err := s.PendingInvitations(ctx)
	if err != nil {
		return domain.Connection{}, err
	}

	for _, invitation := range pending {
		if invitation.Profile.ID != profileID {
			continue
		}

		if strings.TrimSpace(note) == "" {
			note = fmt.Sprintf("Accepted connection with %s.", invitation.Profile.Name)
		}

		return s.AddConnection(ctx, invitation.Profile, note, "")
	}

	if _, connected := s.ConnectionForProfile(profileID); connected {
		return domain.Connection{}, fmt.Errorf("%w: %s", domain.ErrAlreadyConnected, profileID)
	}

	return domain.Connection{}, fmt.Errorf("%w: %s", domain.ErrInvitationNotFound, profileID)
}

// Import merges connections from another network. Profiles already connected
// are skipped.
func (s *Service) Import(ctx context.Context, incoming domain.Network) (ImportReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var report ImportReport
	for _, conn := range incoming.Connections {
		if err := conn.Profile.Validate(); err != nil {
			report.Skipped++
			s.logger.Warn("import skipped invalid connection", zap.String("connection_id", string(conn.ID)), zap.Error(err))
			continue
		}
		if _, exists := s.network.FindByProfile(conn.Profile.ID); exists {
			report.Skipped++
			continue
		}
		if err := domain.ValidateNote(conn.PrivateNote, s.maxNoteLength); err != nil {
			s.logger.Warn("imported note truncated", zap.String("connection_id", string(conn.ID)), zap.Error(err))
			conn.PrivateNote = string([]rune(conn.PrivateNote)[:s.maxNoteLength])
		}
		if err := domain.ValidateMessage(conn.StandardMessage, s.maxMessageLength); err != nil {
			s.logger.Warn("imported message truncated", zap.String("connection_id", string(conn.ID)), zap.Error(err))
			conn.StandardMessage = string([]rune(conn.StandardMessage)[:s.maxMessageLength])
		}
		if _, taken := s.network.FindConnection(conn.ID); taken || conn.ID == "" {
			conn.ID = domain.NewConnectionID(conn.Profile.ID, s.clock.Now())
		}

		s.network.Connections = append(s.network.Connections, conn.Clone())
		s.network.MarkInvited(conn.Profile.ID)
		report.Added++
	}
	for _, profileID := range incoming.SentInvitations {
		if !s.network.HasSentInvitation(profileID) {
			s.network.MarkInvited(profileID)
			report.Invitations++
		}
	}

	s.persistLocked(ctx)

	return report, s.persistErr
}

// LastPersistError reports the most recent failed write, or nil once a write
// has succeeded again.
func (s *Service) LastPersistError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.persistErr
}

func (s *Service) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.persistLocked(ctx)

	return s.persistErr
}

func (s *Service) persistLocked(ctx context.Context) {
	if err := s.repo.Save(ctx, s.network.Clone()); err != nil {
		s.persistErr = fmt.Errorf("save network: %w", err)
		s.logger.Warn("persist network failed, in-memory state kept", zap.Error(err))
		return
	}

	s.persistErr = nil
}

func (s *Service) validate(note, message string) error {
	return errors.Join(
		domain.ValidateNote(note, s.maxNoteLength),
		domain.ValidateMessage(message, s.maxMessageLength),
	)
}
