package transport

import (
	"bytes"
	"encoding/json"
)

// LookupResponse is the subset of the SkipEngine response we read:
//
//	{"Output": {"Identity": {"Phones": {<slot>: {"Phone", "PhoneType"}}, "Emails": {"Email": {"Email"}}}}}
//
// Every level may be missing or carry an unexpected JSON type. Decoding never
// fails on shape, only on invalid JSON; a level with the wrong type is treated
// as absent.
type LookupResponse struct {
	Output *Output
}

// Output wraps the identity block.
type Output struct {
	Identity *Identity
}

// Identity holds the contact slots returned for a person.
type Identity struct {
	Phones PhoneSlots
	Emails EmailSlots
}

// PhoneSlots keeps phone slots in response document order.
type PhoneSlots []PhoneSlot

// PhoneSlot is one named phone entry ("Phone", "Phone2", ...). Entry is nil
// when the slot value is null or not an object.
type PhoneSlot struct {
	Name  string
	Entry *PhoneEntry
}

// PhoneEntry is a single phone record.
type PhoneEntry struct {
	Phone     string
	PhoneType string
}

// EmailSlots keeps email slots in response document order.
type EmailSlots []EmailSlot

// EmailSlot is one named email entry.
type EmailSlot struct {
	Name  string
	Entry *EmailEntry
}

// EmailEntry is a single email record.
type EmailEntry struct {
	Email string
}

// Get returns the entry of the named slot, or nil.
func (s EmailSlots) Get(name string) *EmailEntry {
	for _, slot := range s {
		if slot.Name == name {
			return slot.Entry
		}
	}
	return nil
}

// DecodeLookupResponse parses a response body.
func DecodeLookupResponse(body []byte) (*LookupResponse, error) {
	var resp LookupResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (r *LookupResponse) UnmarshalJSON(data []byte) error {
	*r = LookupResponse{}
	members, ok := objectMembers(data)
	if !ok {
		return nil
	}
	if raw, ok := lookupMember(members, "Output"); ok {
		if inner, ok := objectMembers(raw); ok {
			r.Output = &Output{Identity: decodeIdentity(inner)}
		}
	}
	return nil
}

func decodeIdentity(output []member) *Identity {
	raw, ok := lookupMember(output, "Identity")
	if !ok {
		return nil
	}
	members, ok := objectMembers(raw)
	if !ok {
		return nil
	}

	identity := &Identity{}
	if phones, ok := lookupMember(members, "Phones"); ok {
		slots, _ := objectMembers(phones)
		for _, slot := range slots {
			identity.Phones = append(identity.Phones, PhoneSlot{Name: slot.key, Entry: decodePhoneEntry(slot.value)})
		}
	}
	if emails, ok := lookupMember(members, "Emails"); ok {
		slots, _ := objectMembers(emails)
		for _, slot := range slots {
			identity.Emails = append(identity.Emails, EmailSlot{Name: slot.key, Entry: decodeEmailEntry(slot.value)})
		}
	}
	return identity
}

func decodePhoneEntry(raw json.RawMessage) *PhoneEntry {
	fields, ok := objectMembers(raw)
	if !ok {
		return nil
	}
	entry := &PhoneEntry{}
	if v, ok := lookupMember(fields, "Phone"); ok {
		entry.Phone = flexString(v)
	}
	if v, ok := lookupMember(fields, "PhoneType"); ok {
		entry.PhoneType = flexString(v)
	}
	return entry
}

func decodeEmailEntry(raw json.RawMessage) *EmailEntry {
	fields, ok := objectMembers(raw)
	if !ok {
		return nil
	}
	entry := &EmailEntry{}
	if v, ok := lookupMember(fields, "Email"); ok {
		entry.Email = flexString(v)
	}
	return entry
}

type member struct {
	key   string
	value json.RawMessage
}

// objectMembers returns the members of a JSON object in document order.
// A repeated key keeps its first position and its last value. ok is false
// when data is not an object.
func objectMembers(data []byte) ([]member, bool) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, false
	}
	if delim, isDelim := tok.(json.Delim); !isDelim || delim != '{' {
		return nil, false
	}

	var members []member
	seen := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, isKey := tok.(string)
		if !isKey {
			return nil, false
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, false
		}
		if i, dup := seen[key]; dup {
			members[i].value = value
			continue
		}
		seen[key] = len(members)
		members = append(members, member{key: key, value: value})
	}
	return members, true
}

func lookupMember(members []member, key string) (json.RawMessage, bool) {
	for _, m := range members {
		if m.key == key {
			return m.value, true
		}
	}
	return nil, false
}

// flexString handles values that can be either string or number.
// Anything else reads as empty.
func flexString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
