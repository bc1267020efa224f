package model

// Client is a customer identified by national id (cedula). Vehicles and
// service orders point at the cedula rather than at ClientID; those links are
// resolved by lookup and may dangle.
type Client struct {
	ID        uint   `json:"cliente_id" gorm:"column:cliente_id;primaryKey"`
	Name      string `json:"nombre" gorm:"column:nombre;size:100"`
	Surname   string `json:"apellido" gorm:"column:apellido;size:100"`
	Phone     string `json:"telefono" gorm:"column:telefono;size:15"`
	Email     string `json:"email" gorm:"column:email;size:100;uniqueIndex;not null"`
	Birthdate *Date  `json:"fecha_cumpleanos" gorm:"column:fecha_cumpleanos"`
	Cedula    int64  `json:"cliente_cedula" gorm:"column:cliente_cedula;uniqueIndex;not null"`
}

func (Client) TableName() string {
	return "cliente"
}

// ClientPatch carries the fields of a partial client update. Nil means
// "leave unchanged"; an explicit JSON null is indistinguishable from omission.
type ClientPatch struct {
	Name      *string `json:"nombre"`
	Surname   *string `json:"apellido"`
	Phone     *string `json:"telefono"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Birthdate *Date   `json:"fecha_cumpleanos"`
	Cedula    *int64  `json:"cliente_cedula"`
}

// Apply copies every non-nil field onto c.
func (p ClientPatch) Apply(c *Client) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Surname != nil {
		c.Surname = *p.Surname
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Birthdate != nil {
		c.Birthdate = p.Birthdate
	}
	if p.Cedula != nil {
		c.Cedula = *p.Cedula
	}
}
