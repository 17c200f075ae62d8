package model

type CandidateKind int

const (
	CandidateKindMovie CandidateKind = 0
	CandidateKindTV    CandidateKind = 1
)

func (ck CandidateKind) String() string {
	switch ck {
	case CandidateKindMovie:
		return "movie"
	case CandidateKindTV:
		return "tv"
	default:
		return "movie"
	}
}

func ParseCandidateKind(s string) CandidateKind {
	switch s {
	case "tv":
		return CandidateKindTV
	default:
		return CandidateKindMovie
	}
}
