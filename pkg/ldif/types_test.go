// pkg/ldif/types_test.go

package ldif

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordAccessors(t *testing.T) {
	record := &Record{
		DN: "uid=jdoe,ou=People,dc=example,dc=com",
		Attributes: map[string][]Value{
			"uid":             {Text("jdoe")},
			"uidnumber":       {Integer(10042)},
			"mail":            {Text("jdoe@example.com"), Text("john.doe@example.com")},
			"usercertificate": {Bytes{0x30, 0x82}},
		},
	}

	tests := []struct {
		name      string
		attribute string
		first     string
		all       []string
	}{
		{
			name:      "single text value",
			attribute: "uid",
			first:     "jdoe",
			all:       []string{"jdoe"},
		},
		{
			name:      "lookup is case-insensitive",
			attribute: "UID",
			first:     "jdoe",
			all:       []string{"jdoe"},
		},
		{
			name:      "integer rendered as text",
			attribute: "uidNumber",
			first:     "10042",
			all:       []string{"10042"},
		},
		{
			name:      "multiple values keep order",
			attribute: "mail",
			first:     "jdoe@example.com",
			all:       []string{"jdoe@example.com", "john.doe@example.com"},
		},
		{
			name:      "binary value as raw string",
			attribute: "userCertificate",
			first:     "\x30\x82",
			all:       []string{"\x30\x82"},
		},
		{
			name:      "absent attribute",
			attribute: "cn",
			first:     "",
			all:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.first, record.GetAttributeValue(tt.attribute))
			assert.Equal(t, tt.all, record.GetAttributeValues(tt.attribute))
		})
	}
}

func TestGetAttributeValuesFlattensLists(t *testing.T) {
	record := &Record{
		DN: "cn=staff,ou=Groups,dc=example,dc=com",
		Attributes: map[string][]Value{
			"member": {List{Text("uid=a,dc=x"), Text("uid=b,dc=x")}, Text("uid=c,dc=x")},
		},
	}

	assert.Equal(t, []string{"uid=a,dc=x", "uid=b,dc=x", "uid=c,dc=x"},
		record.GetAttributeValues("member"))
}
