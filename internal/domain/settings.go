package domain

import "time"

const CredentialServiceReturns = "Returns"

// A session is still treated as usable up to this long after it expired.
const sessionGrace = 30 * time.Minute

type Settings struct {
	AnalyzeFiledData bool         `json:"analyze_filed_data"`
	Credentials      []Credential `json:"credentials"`
}

type Credential struct {
	Service       string     `db:"service"        json:"service"`
	GSTIN         string     `db:"gstin"          json:"gstin"`
	SessionExpiry *time.Time `db:"session_expiry" json:"session_expiry,omitempty"`
}

func (s *Settings) Credential(service, gstin string) (Credential, bool) {
	for _, c := range s.Credentials {
		if c.Service == service && c.GSTIN == gstin {
			return c, true
		}
	}

	return Credential{}, false
}
