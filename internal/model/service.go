package model

import "github.com/shopspring/decimal"

// DefaultServiceImage is used when a service is registered without an image.
const DefaultServiceImage = "default.jpg"

// Service is an entry of the wash catalog.
type Service struct {
	ID          uint            `json:"servicio_id" gorm:"column:servicio_id;primaryKey"`
	Name        string          `json:"nombre" gorm:"column:nombre;size:100;not null"`
	Description string          `json:"descripcion" gorm:"column:descripcion;type:text"`
	Price       decimal.Decimal `json:"precio" gorm:"column:precio;type:decimal(10,2)"`
	ImageName   *string         `json:"imagen_nombre" gorm:"column:imagen_nombre;type:text"`
}

func (Service) TableName() string {
	return "servicio"
}

type ServicePatch struct {
	Name        *string          `json:"nombre"`
	Description *string          `json:"descripcion"`
	Price       *decimal.Decimal `json:"precio"`
	ImageName   *string          `json:"imagen_nombre"`
}

func (p ServicePatch) Apply(s *Service) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.ImageName != nil {
		s.ImageName = p.ImageName
	}
}
