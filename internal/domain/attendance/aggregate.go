package attendance

// Counts holds per-employee totals keyed by employee_id.
type Counts struct {
	PresentCounts map[string]int
	AbsentCounts  map[string]int
}

// Present returns the number of PRESENT records for employeeID, zero if unknown.
func (c Counts) Present(employeeID string) int {
	return c.PresentCounts[employeeID]
}

// Absent returns the number of ABSENT records for employeeID, zero if unknown.
func (c Counts) Absent(employeeID string) int {
	return c.AbsentCounts[employeeID]
}

// Aggregate counts PRESENT and ABSENT records per employee in a single pass.
// Records without an employee snapshot and records with any other status are
// skipped.
func Aggregate(records []Record) Counts {
	counts := Counts{
		PresentCounts: make(map[string]int),
		AbsentCounts:  make(map[string]int),
	}

	for _, r := range records {
		code := r.EmployeeCode()
		if code == "" {
			continue
		}
		switch r.Status {
		case StatusPresent:
			counts.PresentCounts[code]++
		case StatusAbsent:
			counts.AbsentCounts[code]++
		}
	}

	return counts
}
