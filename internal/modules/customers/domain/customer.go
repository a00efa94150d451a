package domain

// Customer is a guest record kept by the front of house.
type Customer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"createdAt"`
}

type CreateCustomerInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

func (in CreateCustomerInput) Build(id, createdAt string) Customer {
	return Customer{ID: id, Name: in.Name, Email: in.Email, Phone: in.Phone, Notes: in.Notes, CreatedAt: createdAt}
}

type CustomerPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	Notes *string `json:"notes"`
}

func (p CustomerPatch) Apply(c Customer) Customer {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	return c
}
