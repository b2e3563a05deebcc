package service

import (
	"errors"
	"fmt"
	"strings"

	"estate-backoffice/internal/models"
	"estate-backoffice/internal/repository"
	"estate-backoffice/pkg/validator"
)

var ErrParticipantExists = errors.New("participant already invited for this property")

var participantRoles = map[string]bool{
	"viewer": true,
	"editor": true,
	"owner":  true,
}

type ParticipantService struct {
	participantRepo repository.ParticipantRepository
	propertyRepo    repository.PropertyRepository
	notifications   *NotificationService
	events          *Events
}

func NewParticipantService(
	participantRepo repository.ParticipantRepository,
	propertyRepo repository.PropertyRepository,
	notifications *NotificationService,
	events *Events,
) *ParticipantService {
	return &ParticipantService{
		participantRepo: participantRepo,
		propertyRepo:    propertyRepo,
		notifications:   notifications,
		events:          events,
	}
}

// Invite adds a participant to a property and notifies the listing
// agent. Duplicate invites for the same address are rejected.
func (s *ParticipantService) Invite(propertyID uint, req models.InviteParticipantRequest, invitedBy uint) (*models.Participant, error) {
	property, err := s.propertyRepo.GetByID(propertyID)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(validator.TrimSpaces(req.Email))
	if !validator.ValidateEmail(email) {
		return nil, errors.New("invalid participant email")
	}

	exists, err := s.participantRepo.ExistsForProperty(propertyID, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrParticipantExists
	}

	role := req.Role
	if role == "" {
		role = "viewer"
	}
	if !participantRoles[role] {
		return nil, fmt.Errorf("unknown participant role %q", role)
	}

	participant := &models.Participant{
		PropertyID: propertyID,
		Name:       validator.SanitizeString(req.Name),
		Email:      email,
		Role:       role,
		Status:     models.ParticipantStatusInvited,
		InvitedBy:  invitedBy,
	}

	if err := s.participantRepo.Create(participant); err != nil {
		return nil, err
	}

	if recipient := notifyTarget(property, invitedBy); recipient != 0 {
		_, _ = s.notifications.Notify(
			recipient,
			"participant_invited",
			"New participant invited",
			fmt.Sprintf("%s was invited to %s", participant.Name, property.Title),
		)
	}

	s.events.Publish(Event{
		Type:   EventParticipantInvited,
		UserID: invitedBy,
		Payload: map[string]interface{}{
			"property_id":    propertyID,
			"participant_id": participant.ID,
		},
	})

	return participant, nil
}

// notifyTarget picks who hears about the invite: the listing agent,
// else the creator, skipping the inviter themselves.
func notifyTarget(property *models.Property, invitedBy uint) uint {
	if property.AgentID != nil && *property.AgentID != invitedBy {
		return *property.AgentID
	}
	if property.CreatedBy != 0 && property.CreatedBy != invitedBy {
		return property.CreatedBy
	}
	return 0
}

func (s *ParticipantService) GetByProperty(propertyID uint) ([]models.Participant, error) {
	return s.participantRepo.GetByProperty(propertyID)
}

func (s *ParticipantService) Activate(id uint) (*models.Participant, error) {
	participant, err := s.participantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	participant.Status = models.ParticipantStatusActive
	if err := s.participantRepo.Update(participant); err != nil {
		return nil, err
	}
	return participant, nil
}

func (s *ParticipantService) Remove(id uint) error {
	return s.participantRepo.Delete(id)
}
