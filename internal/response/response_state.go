package response

// responseState tracks which part of a response a ResponseWriter expects next.
type responseState uint8

const (
	stateStatusLine responseState = iota
	stateHeaders
	stateBody
	stateDone
)

var stateNames = [...]string{"status line", "headers", "body", "done"}

func (rs responseState) String() string {
	if int(rs) < len(stateNames) {
		return stateNames[rs]
	}
	return "invalid"
}

func newResponseState() responseState {
	return stateStatusLine
}

// advance moves to the next part. Advancing past done is a programming error.
func (rs responseState) advance() responseState {
	if rs >= stateDone {
		panic("invalid response state advance: " + rs.String())
	}
	return rs + 1
}
