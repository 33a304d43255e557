package service

import (
	"testing"

	"skiptrace/internal/skiptrace/transport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body string) *transport.LookupResponse {
	t.Helper()
	resp, err := transport.DecodeLookupResponse([]byte(body))
	require.NoError(t, err)
	return resp
}

func TestProjectEmptyShapes(t *testing.T) {
	bodies := []string{
		`{}`,
		`{"Output":{}}`,
		`{"Output":{"Identity":{}}}`,
		`{"Output":{"Identity":null}}`,
		`{"Output":"nope"}`,
		`[]`,
		`null`,
		`{"Output":{"Identity":{"Phones":{},"Emails":{}}}}`,
	}
	for _, body := range bodies {
		assert.Equal(t, transport.ContactResult{}, Project(decode(t, body)), "body %s", body)
	}
	assert.Equal(t, transport.ContactResult{}, Project(nil))
}

func TestProjectClassifiesPhones(t *testing.T) {
	cases := []struct {
		name string
		body string
		want transport.ContactResult
	}{
		{
			name: "wireless is mobile",
			body: `{"Output":{"Identity":{"Phones":{"Phone":{"Phone":"5551234567","PhoneType":"W"}}}}}`,
			want: transport.ContactResult{MobilePhone: "555-123-4567"},
		},
		{
			name: "cell is mobile",
			body: `{"Output":{"Identity":{"Phones":{"Phone":{"Phone":"5551234567","PhoneType":"C"}}}}}`,
			want: transport.ContactResult{MobilePhone: "555-123-4567"},
		},
		{
			name: "mobile is mobile",
			body: `{"Output":{"Identity":{"Phones":{"Phone":{"Phone":"5551234567","PhoneType":"M"}}}}}`,
			want: transport.ContactResult{MobilePhone: "555-123-4567"},
		},
		{
			name: "home is landline",
			body: `{"Output":{"Identity":{"Phones":{"Phone":{"Phone":"5551234567","PhoneType":"H"}}}}}`,
			want: transport.ContactResult{Landline: "555-123-4567"},
		},
		{
			name: "missing type is landline",
			body: `{"Output":{"Identity":{"Phones":{"Phone":{"Phone":"5551234567"}}}}}`,
			want: transport.ContactResult{Landline: "555-123-4567"},
		},
		{
			name: "type is case sensitive",
			body: `{"Output":{"Identity":{"Phones":{"Phone":{"Phone":"5551234567","PhoneType":"w"}}}}}`,
			want: transport.ContactResult{Landline: "555-123-4567"},
		},
		{
			name: "non ten digit passes through",
			body: `{"Output":{"Identity":{"Phones":{"Phone":{"Phone":"15551234567","PhoneType":"W"}}}}}`,
			want: transport.ContactResult{MobilePhone: "15551234567"},
		},
		{
			name: "numeric phone value",
			body: `{"Output":{"Identity":{"Phones":{"Phone":{"Phone":5551234567,"PhoneType":"W"}}}}}`,
			want: transport.ContactResult{MobilePhone: "555-123-4567"},
		},
		{
			name: "both classes from separate slots",
			body: `{"Output":{"Identity":{"Phones":{
				"Phone":{"Phone":"5551112222","PhoneType":"H"},
				"Phone2":{"Phone":"5553334444","PhoneType":"W"}}}}}`,
			want: transport.ContactResult{MobilePhone: "555-333-4444", Landline: "555-111-2222"},
		},
		{
			name: "empty and null slots are skipped",
			body: `{"Output":{"Identity":{"Phones":{
				"Phone":{"Phone":"5551112222","PhoneType":"W"},
				"Phone2":{"Phone":"","PhoneType":"W"},
				"Phone3":null,
				"Phone4":{}}}}}`,
			want: transport.ContactResult{MobilePhone: "555-111-2222"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Project(decode(t, tc.body)))
		})
	}
}

func TestProjectLastQualifyingSlotWins(t *testing.T) {
	body := `{"Output":{"Identity":{"Phones":{
		"Phone":{"Phone":"1111111111","PhoneType":"W"},
		"Phone2":{"Phone":"2222222222","PhoneType":"H"},
		"Phone3":{"Phone":"3333333333","PhoneType":"C"},
		"Phone4":{"Phone":"4444444444","PhoneType":"R"},
		"Phone5":{"Phone":"","PhoneType":"M"}
	}}}}`

	got := Project(decode(t, body))
	assert.Equal(t, "333-333-3333", got.MobilePhone)
	assert.Equal(t, "444-444-4444", got.Landline)
}

func TestProjectFollowsDocumentOrderNotSlotName(t *testing.T) {
	body := `{"Output":{"Identity":{"Phones":{
		"Phone2":{"Phone":"2222222222","PhoneType":"W"},
		"Phone":{"Phone":"1111111111","PhoneType":"W"}
	}}}}`

	assert.Equal(t, "111-111-1111", Project(decode(t, body)).MobilePhone)
}

func TestProjectEmail(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"email slot", `{"Output":{"Identity":{"Emails":{"Email":{"Email":"a@b.com"}}}}}`, "a@b.com"},
		{"other slots ignored", `{"Output":{"Identity":{"Emails":{"Email2":{"Email":"x@y.com"}}}}}`, ""},
		{"empty email", `{"Output":{"Identity":{"Emails":{"Email":{"Email":""}}}}}`, ""},
		{"slot is not an object", `{"Output":{"Identity":{"Emails":{"Email":"a@b.com"}}}}`, ""},
		{"emails is a list", `{"Output":{"Identity":{"Emails":[{"Email":"a@b.com"}]}}}`, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Project(decode(t, tc.body)).Email)
		})
	}
}

func TestProjectFromStructLiteral(t *testing.T) {
	resp := &transport.LookupResponse{Output: &transport.Output{Identity: &transport.Identity{
		Phones: transport.PhoneSlots{
			{Name: "Phone", Entry: &transport.PhoneEntry{Phone: "5551234567", PhoneType: "W"}},
		},
		Emails: transport.EmailSlots{
			{Name: "Email", Entry: &transport.EmailEntry{Email: "a@b.com"}},
		},
	}}}

	assert.Equal(t, transport.ContactResult{MobilePhone: "555-123-4567", Email: "a@b.com"}, Project(resp))
}
