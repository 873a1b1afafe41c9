// Package serializer holds the static mapping between stored entities and
// their external shapes: foreign keys renamed to <parent>Id on the way out,
// nested address/geo/company objects composed from flat user columns, and
// write-only credentials.
package serializer

import (
	"strings"

	"github.com/tarkangur/task-project/models"
)

type Geo struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
	Geo     Geo    `json:"geo"`
}

type Company struct {
	Name string `json:"name"`
}

// UserOut is the public profile shape. There is no password field here at
// all: the credential is write-only.
type UserOut struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Address  Address `json:"address"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Company  Company `json:"company"`
}

// UserIn is the externally settable shape. Password is accepted on input,
// absorbed into a bcrypt hash by the handler, and never serialized out.
// It is required on create only, so the tag leaves it optional.
type UserIn struct {
	Username  string   `json:"username" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Password  string   `json:"password"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Address   *Address `json:"address"`
	Phone     string   `json:"phone"`
	Website   string   `json:"website"`
	Company   *Company `json:"company"`
}

func UserToExternal(u models.User) UserOut {
	return UserOut{
		ID:       u.ID,
		Name:     strings.TrimSpace(u.FirstName + " " + u.LastName),
		Username: u.Username,
		Email:    u.Email,
		Address: Address{
			Street:  u.Street,
			Suite:   u.Suite,
			City:    u.City,
			Zipcode: u.Zipcode,
			Geo:     Geo{Lat: u.GeoLat, Lng: u.GeoLng},
		},
		Phone:   u.Phone,
		Website: u.Website,
		Company: Company{Name: u.CompanyName},
	}
}

// UserApply copies the externally settable fields onto u. The credential
// hash is the handler's job; ID and CreatedAt are never touched.
func UserApply(u *models.User, in UserIn) {
	u.Username = in.Username
	u.Email = in.Email
	u.FirstName = in.FirstName
	u.LastName = in.LastName
	if in.Address != nil {
		u.Street = in.Address.Street
		u.Suite = in.Address.Suite
		u.City = in.Address.City
		u.Zipcode = in.Address.Zipcode
		u.GeoLat = in.Address.Geo.Lat
		u.GeoLng = in.Address.Geo.Lng
	}
	u.Phone = in.Phone
	u.Website = in.Website
	if in.Company != nil {
		u.CompanyName = in.Company.Name
	}
}
