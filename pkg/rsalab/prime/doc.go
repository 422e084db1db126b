// Package prime generates the probable primes the RSA lab's keys are made
// of: a witness-based primality test, a per-bit random candidate source, and
// the masked search loop that ties them together.
//
// # Pipeline
//
//   - Source draws a uniform value of a requested bit width, one fair coin
//     per bit position.
//   - Generator ORs each draw with a mask that forces the top two bits and
//     the low bit, so every candidate is odd, has exactly the requested
//     width, and lands in the upper half of the range.
//   - Tester rejects candidates by trial division against a small fixed
//     prime set, then runs a Miller-Rabin witness check on the survivors.
//
// # Usage
//
//	gen := prime.NewGenerator(prime.Config{})
//	p, err := gen.Prime(ctx, 1024)
//
// # Accuracy
//
// The default Tester uses the single fixed witness 2, reproducing the lab's
// historical behavior. A single witness has a known false-positive class
// (strong pseudoprimes such as 4033 = 37*109 pass it), which is acceptable
// for random candidates but not for adversarially chosen inputs. Callers
// needing a stronger check pass more witnesses to NewTester; the search
// machinery is unchanged.
//
// # Liveness
//
// The candidate loop in Generator is unbounded by default, exactly like the
// lab it reimplements: a sufficiently unlucky random stream keeps it
// searching forever. Config.MaxAttempts bounds the search as an opt-in
// deliberate change, and the context passed to Prime or Search cancels it.
package prime
