package acceptance

type Verdict string

const (
	VerdictAccept Verdict = "ACCEPT"
	VerdictReject Verdict = "REJECT"
)

// DeriveVerdict accepts the lot when observedDefects does not exceed the
// accept number.
func DeriveVerdict(acceptNumber, observedDefects int) Verdict {
	if observedDefects <= acceptNumber {
		return VerdictAccept
	}
	return VerdictReject
}

func (r Result) Verdict(observedDefects int) Verdict {
	return DeriveVerdict(r.AcceptNumber, observedDefects)
}
