package services

import (
	"errors"
	"strings"

	"backend/entity"
	"backend/repository"
	"backend/utils"

	"gorm.io/gorm"
)

const maxDesignRequestImages = 5

type DesignRequestService struct {
	Repo *repository.DesignRequestRepository
}

func NewDesignRequestService(repo *repository.DesignRequestRepository) *DesignRequestService {
	return &DesignRequestService{Repo: repo}
}

type DesignRequestIn struct {
	ContactName  string
	ContactEmail string
	ContactPhone string
	Description  string
	MetalType    string
	StoneType    string
	BudgetMinUSD int64
	BudgetMaxUSD int64
	ImagesBase64 []string
}

// Submit stores the intake plus up to five reference images
func (s *DesignRequestService) Submit(userID uint, in DesignRequestIn) (*entity.DesignRequest, error) {
	if strings.TrimSpace(in.Description) == "" {
		return nil, errors.New("description required")
	}
	if in.BudgetMaxUSD > 0 && in.BudgetMinUSD > in.BudgetMaxUSD {
		return nil, errors.New("budget range inverted")
	}
	if len(in.ImagesBase64) > maxDesignRequestImages {
		return nil, errors.New("too many reference images")
	}

	// decode everything up front so a bad image rejects the whole submission
	type decoded struct {
		data []byte
		ct   string
	}
	images := make([]decoded, 0, len(in.ImagesBase64))
	for _, b64 := range in.ImagesBase64 {
		data, ct, err := utils.DecodeBase64Image(b64)
		if err != nil {
			return nil, errors.New("invalid reference image")
		}
		images = append(images, decoded{data: data, ct: ct})
	}

	req := &entity.DesignRequest{
		ReferenceNo:  utils.NewReferenceNo("DSN"),
		ContactName:  strings.TrimSpace(in.ContactName),
		ContactEmail: strings.ToLower(strings.TrimSpace(in.ContactEmail)),
		ContactPhone: strings.TrimSpace(in.ContactPhone),
		Description:  in.Description,
		MetalType:    in.MetalType,
		StoneType:    in.StoneType,
		BudgetMinUSD: in.BudgetMinUSD,
		BudgetMaxUSD: in.BudgetMaxUSD,
		Status:       entity.DesignRequestNew,
		UserID:       userID,
	}
	// the request and its images land together or not at all
	err := s.Repo.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, req); err != nil {
			return err
		}
		for _, img := range images {
			di := &entity.DesignRequestImage{
				Image:           img.data,
				ImageType:       img.ct,
				ImageSize:       int64(len(img.data)),
				DesignRequestID: req.ID,
			}
			if err := s.Repo.AddImage(tx, di); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}
