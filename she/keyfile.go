package she

import (
	"bufio"
	"fmt"
	"io"
	"math/big"

	"github.com/plwe-she/she/ring"
)

// SaveKey writes key to w in the scheme's key-file format: each of the
// three ring elements (Sk, PkA, PkB) is written as its degree n, its
// modulus q, and then its n coefficients, one line per field.
func SaveKey(w io.Writer, key *Key) error {
	bw := bufio.NewWriter(w)

	for _, p := range []*ring.Poly{key.Sk, key.PkA, key.PkB} {
		if err := writePoly(bw, p, key.Settings.Q()); err != nil {
			return fmt.Errorf("she: SaveKey: %w", ErrIO)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("she: SaveKey: %w: %v", ErrIO, err)
	}
	return nil
}

// LoadKey reads a key previously written by SaveKey, using settings to
// validate the ring each stored polynomial belongs to.
func LoadKey(r io.Reader, settings *Settings) (*Key, error) {
	br := bufio.NewReader(r)

	sk, qSk, err := readPoly(br)
	if err != nil {
		return nil, fmt.Errorf("she: LoadKey: reading sk: %w", ErrIO)
	}
	pkA, qPkA, err := readPoly(br)
	if err != nil {
		return nil, fmt.Errorf("she: LoadKey: reading pkA: %w", ErrIO)
	}
	pkB, qPkB, err := readPoly(br)
	if err != nil {
		return nil, fmt.Errorf("she: LoadKey: reading pkB: %w", ErrIO)
	}

	if sk.N() != settings.N() || pkA.N() != settings.N() || pkB.N() != settings.N() {
		return nil, fmt.Errorf("she: LoadKey: stored degree does not match settings: %w", ErrIO)
	}

	if qSk.Cmp(settings.Q()) != 0 || qPkA.Cmp(settings.Q()) != 0 || qPkB.Cmp(settings.Q()) != 0 {
		return nil, fmt.Errorf("she: LoadKey: stored modulus does not match settings: %w", ErrIO)
	}

	return &Key{Settings: settings, Sk: sk, PkA: pkA, PkB: pkB}, nil
}

func writePoly(w *bufio.Writer, p *ring.Poly, q *big.Int) error {
	if _, err := fmt.Fprintf(w, "%d\n%s\n", p.N(), q.String()); err != nil {
		return err
	}
	for _, c := range p.Coeffs {
		if _, err := fmt.Fprintf(w, "%s\n", c.String()); err != nil {
			return err
		}
	}
	return nil
}

func readPoly(r *bufio.Reader) (*ring.Poly, *big.Int, error) {
	var n int
	if _, err := fmt.Fscanf(r, "%d\n", &n); err != nil {
		return nil, nil, err
	}

	qLine, err := r.ReadString('\n')
	if err != nil {
		return nil, nil, err
	}

	q, ok := new(big.Int).SetString(trimNewline(qLine), 10)
	if !ok {
		return nil, nil, fmt.Errorf("she: readPoly: malformed modulus %q", qLine)
	}

	p := ring.NewPoly(n)
	for i := 0; i < n; i++ {
		line, err := r.ReadString('\n')
		if err != nil {
			return nil, nil, err
		}
		c, ok := new(big.Int).SetString(trimNewline(line), 10)
		if !ok {
			return nil, nil, fmt.Errorf("she: readPoly: malformed coefficient %q", line)
		}
		p.Coeffs[i] = c
	}

	return p, q, nil
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
