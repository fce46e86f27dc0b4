package example

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
)

type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusCompleted JobStatus = "completed"
)

type Requirement struct {
	Title    string
	Priority Priority
}

type GenerationJob struct {
	Status JobStatus
}

func bad() {
	r := &Requirement{}
	r.Priority = "Critical" // want "enum field Priority assigned string literal"

	j := &GenerationJob{}
	j.Status = "done" // want "enum field Status assigned string literal"

	_ = GenerationJob{Status: "queued"} // want "enum field Status assigned string literal"
}

func good() {
	r := &Requirement{Title: "Approve orders"}
	r.Priority = PriorityHigh

	j := &GenerationJob{Status: JobStatusQueued}
	j.Status = JobStatusCompleted
}

func alsoGood() {
	// variable, not literal
	p := PriorityMedium
	r := Requirement{Priority: p}
	_ = r
}
