package employee

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is the server's opaque primary key. It is decoded from either a JSON
// number or a JSON string and only ever echoed back in URLs.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", b, err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}

type Employee struct {
	ID         ID     `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// Summary is the server-side present-day total for one employee.
type Summary struct {
	EmployeeID       string `json:"employee_id"`
	TotalPresentDays int    `json:"total_present_days"`
}
