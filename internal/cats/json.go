package cats

import "fmt"

// Pairs serialize as two-character strings ("Ss") rather than byte arrays
// so persisted snapshots stay readable and diffable.

func (p Pair) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

func (p *Pair) UnmarshalJSON(data []byte) error {
	if len(data) != 4 || data[0] != '"' || data[3] != '"' {
		return fmt.Errorf("allele pair: expected two-character string, got %s", data)
	}
	p[0] = Allele(data[1])
	p[1] = Allele(data[2])
	return nil
}
