package usecase

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/dto"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/model"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/repository"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/response"
	"github.com/google/uuid"
)

const defaultListLimit = 20

type ProfileCardUsecase struct {
	repo    *repository.ProfileCardRepository
	baseURL string
}

func NewProfileCardUsecase(repo *repository.ProfileCardRepository, baseURL string) *ProfileCardUsecase {
	return &ProfileCardUsecase{repo: repo, baseURL: baseURL}
}

func (uc *ProfileCardUsecase) Create(req *dto.CreateProfileCardRequest) (*dto.CreateProfileCardResponse, error) {
	theme := req.Theme
	if theme == "" {
		theme = model.CardThemes[0]
	}

	skills, err := encodeSkills(req.Skills)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	card := model.ProfileCard{
		ID:           uuid.New(),
		Name:         req.Name,
		Bio:          req.Bio,
		Skills:       skills,
		ProfileImage: req.ProfileImage,
		Theme:        theme,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(&card); err != nil {
		return nil, err
	}

	cardDTO, err := toCardDTO(&card)
	if err != nil {
		return nil, err
	}
	return &dto.CreateProfileCardResponse{
		Card:     *cardDTO,
		ShareURL: fmt.Sprintf("%s/profile/%s", uc.baseURL, card.ID),
	}, nil
}

func (uc *ProfileCardUsecase) Get(id string) (*dto.ProfileCardDTO, error) {
	card, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toCardDTO(card)
}

// Update applies patch semantics: only fields present in the request
// are written, everything else is left as stored.
func (uc *ProfileCardUsecase) Update(id string, req *dto.UpdateProfileCardRequest) (*dto.ProfileCardDTO, error) {
	fields := map[string]any{"updated_at": time.Now().UTC()}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.Skills != nil {
		skills, err := encodeSkills(*req.Skills)
		if err != nil {
			return nil, err
		}
		fields["skills"] = skills
	}
	if req.ProfileImage != nil {
		fields["profile_image"] = *req.ProfileImage
	}
	if req.Theme != nil {
		fields["theme"] = *req.Theme
	}

	if err := uc.repo.UpdateFields(id, fields); err != nil {
		return nil, err
	}
	card, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toCardDTO(card)
}

func (uc *ProfileCardUsecase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func (uc *ProfileCardUsecase) List(req *dto.ListProfileCardsRequest) ([]dto.ProfileCardDTO, int64, *response.Pagination, error) {
	limit := req.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	cards, err := uc.repo.List(limit, req.Offset)
	if err != nil {
		return nil, 0, nil, err
	}
	total, err := uc.repo.Count()
	if err != nil {
		return nil, 0, nil, err
	}

	out := make([]dto.ProfileCardDTO, 0, len(cards))
	for i := range cards {
		d, err := toCardDTO(&cards[i])
		if err != nil {
			return nil, 0, nil, err
		}
		out = append(out, *d)
	}

	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}
	pagination := &response.Pagination{
		Page:       req.Offset/limit + 1,
		PageSize:   limit,
		TotalPages: totalPages,
		TotalItems: total,
		HasMore:    int64(req.Offset+len(out)) < total,
		From:       req.Offset + 1,
		To:         req.Offset + len(out),
	}
	return out, total, pagination, nil
}

// Skills persist as a flat JSON-encoded string column; the count is
// enforced at write time only.
func encodeSkills(skills []string) (string, error) {
	b, err := json.Marshal(skills)
	if err != nil {
		return "", fmt.Errorf("encode skills: %w", err)
	}
	return string(b), nil
}

func decodeSkills(encoded string) ([]string, error) {
	if encoded == "" {
		return nil, nil
	}
	var skills []string
	if err := json.Unmarshal([]byte(encoded), &skills); err != nil {
		return nil, fmt.Errorf("decode skills: %w", err)
	}
	return skills, nil
}

func toCardDTO(card *model.ProfileCard) (*dto.ProfileCardDTO, error) {
	skills, err := decodeSkills(card.Skills)
	if err != nil {
		return nil, err
	}
	return &dto.ProfileCardDTO{
		ID:           card.ID.String(),
		Name:         card.Name,
		Bio:          card.Bio,
		Skills:       skills,
		ProfileImage: card.ProfileImage,
		Theme:        card.Theme,
		CreatedAt:    card.CreatedAt,
		UpdatedAt:    card.UpdatedAt,
	}, nil
}
