// Command she-demo is a demonstration driver, not part of the scheme's
// core contract: it generates a key pair, encrypts symmetrically (the
// asymmetric Encrypt path is not used here), relinearizes a product
// ciphertext, and then runs
// two independent homomorphic evaluations concurrently, one per
// goroutine, each owning its own sampler instances.
package main

import (
	"fmt"
	"math/big"
	"os"
	"sync"

	"golang.org/x/crypto/blake2b"

	"github.com/plwe-she/she/encoding"
	"github.com/plwe-she/she/ring"
	"github.com/plwe-she/she/sampling"
	"github.com/plwe-she/she/she"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "she-demo:", err)
		os.Exit(1)
	}
}

func run() error {
	q, ok := new(big.Int).SetString("170141183460469231731687303715884105727", 10) // 2^127-1
	if !ok {
		return fmt.Errorf("she-demo: failed to parse modulus")
	}

	settings, err := she.NewSettings(64, q, 1<<16, 2, 4)
	if err != nil {
		return err
	}

	label := runLabel(settings)
	fmt.Printf("she-demo: run %s, n=%d, q_bits=%d, t=%d, D=%d\n",
		label, settings.N(), settings.QBits(), settings.T(), settings.D())

	fs, err := sampling.NewZigguratSampler()
	if err != nil {
		return err
	}

	kg, err := she.NewKeyGenerator(settings, fs)
	if err != nil {
		return err
	}
	key := kg.GenKey()

	evalKey, err := kg.GenEvalKey(key, settings.B())
	if err != nil {
		return err
	}

	if err := demoRelinearize(settings, key, evalKey); err != nil {
		return err
	}

	return demoConcurrentEvaluations(settings, key)
}

// runLabel derives a short, non-cryptographic identifier for this run's
// console output from the settings; it has no bearing on key material.
func runLabel(settings *she.Settings) string {
	sum := blake2b.Sum256([]byte(fmt.Sprintf("%d:%s:%d", settings.N(), settings.Q().String(), settings.T())))
	return fmt.Sprintf("%x", sum[:4])
}

func demoRelinearize(settings *she.Settings, key *she.Key, evalKey *she.EvalKey) error {
	r, err := settings.Ring()
	if err != nil {
		return err
	}

	fsEnc, err := sampling.NewZigguratSampler()
	if err != nil {
		return err
	}
	enc, err := she.NewEncryptorWithSamplers(settings, fsEnc, nil)
	if err != nil {
		return err
	}

	p1, err := encoding.Encode(r, big.NewInt(6), settings.B())
	if err != nil {
		return err
	}
	p2, err := encoding.Encode(r, big.NewInt(7), settings.B())
	if err != nil {
		return err
	}

	c1, err := enc.EncryptSymmetric(key, p1)
	if err != nil {
		return err
	}
	c2, err := enc.EncryptSymmetric(key, p2)
	if err != nil {
		return err
	}

	ev, err := she.NewEvaluator(settings)
	if err != nil {
		return err
	}

	product, err := ev.EvalMul(c1, c2)
	if err != nil {
		return err
	}

	relin, err := ev.Relinearize(product, evalKey)
	if err != nil {
		return err
	}

	dec, err := she.NewDecryptor(settings, key)
	if err != nil {
		return err
	}

	got := dec.Decrypt(relin)
	val, err := encoding.Decode(got, settings.B())
	if err != nil {
		return err
	}

	fmt.Printf("she-demo: 6 * 7 (relinearized) = %s\n", val.String())
	return nil
}

// demoConcurrentEvaluations runs two independent homomorphic evaluations
// at once, each in its own goroutine with its own Encryptor and sampler
// instances: the samplers are stateful and not safe to share across
// goroutines, so each worker owns its own.
func demoConcurrentEvaluations(settings *she.Settings, key *she.Key) error {
	results := make([]string, 2)
	errs := make([]error, 2)

	var wg sync.WaitGroup
	wg.Add(2)

	inputs := [2][2]int64{{3, 4}, {10, -2}}

	for i := 0; i < 2; i++ {
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = evaluateSum(settings, key, inputs[i][0], inputs[i][1])
		}(i)
	}

	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("she-demo: evaluation %d: %w", i, err)
		}
		fmt.Printf("she-demo: concurrent evaluation %d result = %s\n", i, results[i])
	}
	return nil
}

func evaluateSum(settings *she.Settings, key *she.Key, x, y int64) (string, error) {
	r, err := settings.Ring()
	if err != nil {
		return "", err
	}

	fs, err := sampling.NewZigguratSampler()
	if err != nil {
		return "", err
	}
	enc, err := she.NewEncryptorWithSamplers(settings, fs, nil)
	if err != nil {
		return "", err
	}

	px, err := encodeSigned(r, settings, x)
	if err != nil {
		return "", err
	}
	py, err := encodeSigned(r, settings, y)
	if err != nil {
		return "", err
	}

	cx, err := enc.EncryptSymmetric(key, px)
	if err != nil {
		return "", err
	}
	cy, err := enc.EncryptSymmetric(key, py)
	if err != nil {
		return "", err
	}

	ev, err := she.NewEvaluator(settings)
	if err != nil {
		return "", err
	}
	sum := ev.EvalAdd(cx, cy)

	dec, err := she.NewDecryptor(settings, key)
	if err != nil {
		return "", err
	}

	got := dec.Decrypt(sum)
	val, err := encoding.Decode(got, settings.B())
	if err != nil {
		return "", err
	}
	return val.String(), nil
}

// encodeSigned base-b encodes a (possibly negative) integer: it encodes |v|
// and, for negative v, negates every digit modulo q, so that decryption's
// centered mod_t reduction yields negative digits and Decode returns the
// same signed value.
func encodeSigned(r *ring.Ring, settings *she.Settings, v int64) (*ring.Poly, error) {
	p, err := encoding.Encode(r, new(big.Int).Abs(big.NewInt(v)), settings.B())
	if err != nil {
		return nil, err
	}
	if v < 0 {
		r.ScalarMulSI(p, p, -1)
		r.Normalize(p)
	}
	return p, nil
}
