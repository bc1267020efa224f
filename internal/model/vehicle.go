package model

// Vehicle is identified by its plate. ClientCedula is a soft reference to
// Client.Cedula with no foreign key behind it.
type Vehicle struct {
	ID           uint   `json:"vehiculo_id" gorm:"column:vehiculo_id;primaryKey"`
	ClientCedula int64  `json:"cliente_cedula" gorm:"column:cliente_cedula;not null;index"`
	Make         string `json:"marca" gorm:"column:marca;size:100"`
	Model        string `json:"modelo" gorm:"column:modelo;size:100"`
	Plate        string `json:"placa" gorm:"column:placa;size:10;uniqueIndex;not null"`
	Color        string `json:"color" gorm:"column:color;size:50;not null"`
	Type         string `json:"tipo" gorm:"column:tipo;size:50;not null"`
	Label        string `json:"nombre" gorm:"column:nombre;size:50;not null"`
}

func (Vehicle) TableName() string {
	return "vehiculo"
}

type VehiclePatch struct {
	ClientCedula *int64  `json:"cliente_cedula"`
	Make         *string `json:"marca"`
	Model        *string `json:"modelo"`
	Plate        *string `json:"placa" validate:"omitempty,max=10"`
	Color        *string `json:"color"`
	Type         *string `json:"tipo"`
	Label        *string `json:"nombre"`
}

func (p VehiclePatch) Apply(v *Vehicle) {
	if p.ClientCedula != nil {
		v.ClientCedula = *p.ClientCedula
	}
	if p.Make != nil {
		v.Make = *p.Make
	}
	if p.Model != nil {
		v.Model = *p.Model
	}
	if p.Plate != nil {
		v.Plate = *p.Plate
	}
	if p.Color != nil {
		v.Color = *p.Color
	}
	if p.Type != nil {
		v.Type = *p.Type
	}
	if p.Label != nil {
		v.Label = *p.Label
	}
}
