package serializer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarkangur/task-project/models"
)

func TestUserToExternalComposesNestedObjects(t *testing.T) {
	u := models.User{
		ID:          3,
		Username:    "bret",
		Email:       "bret@example.com",
		FirstName:   "Leanne",
		LastName:    "Graham",
		Street:      "Kulas Light",
		Suite:       "Apt. 556",
		City:        "Gwenborough",
		Zipcode:     "92998-3874",
		GeoLat:      -37.3159,
		GeoLng:      81.1496,
		Phone:       "1-770-736-8031",
		Website:     "https://hildegard.org",
		CompanyName: "Romaguera-Crona",
	}

	out := UserToExternal(u)

	assert.Equal(t, "Leanne Graham", out.Name)
	assert.Equal(t, "Kulas Light", out.Address.Street)
	assert.Equal(t, "92998-3874", out.Address.Zipcode)
	assert.Equal(t, -37.3159, out.Address.Geo.Lat)
	assert.Equal(t, 81.1496, out.Address.Geo.Lng)
	assert.Equal(t, "Romaguera-Crona", out.Company.Name)
}

func TestUserNameTrimsMissingParts(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Leanne", "Graham", "Leanne Graham"},
		{"Leanne", "", "Leanne"},
		{"", "Graham", "Graham"},
		{"", "", ""},
	}
	for _, tt := range tests {
		out := UserToExternal(models.User{FirstName: tt.first, LastName: tt.last})
		assert.Equal(t, tt.want, out.Name)
	}
}

func TestUserOutputNeverCarriesPassword(t *testing.T) {
	u := models.User{ID: 1, Username: "bret", PasswordHash: "$2a$10$secret"}
	raw, err := json.Marshal(UserToExternal(u))
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "secret")
}

func TestUserRoundTrip(t *testing.T) {
	in := UserIn{
		Username:  "bret",
		Email:     "bret@example.com",
		FirstName: "Leanne",
		LastName:  "Graham",
		Address: &Address{
			Street:  "Kulas Light",
			Suite:   "Apt. 556",
			City:    "Gwenborough",
			Zipcode: "92998-3874",
			Geo:     Geo{Lat: -37.3159, Lng: 81.1496},
		},
		Phone:   "1-770-736-8031",
		Website: "https://hildegard.org",
		Company: &Company{Name: "Romaguera-Crona"},
	}

	var u models.User
	UserApply(&u, in)
	out := UserToExternal(u)

	assert.Equal(t, in.Username, out.Username)
	assert.Equal(t, in.Email, out.Email)
	assert.Equal(t, *in.Address, out.Address)
	assert.Equal(t, in.Phone, out.Phone)
	assert.Equal(t, in.Website, out.Website)
	assert.Equal(t, *in.Company, out.Company)
}
