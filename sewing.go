package anyon

/*
L contracts the recoupling tree of one qudit for a fixed hidden channel k.

It re-expresses the exchange of the last anyon of qudit m with the first
anyon of qudit m+1 in terms of local F and B moves, summing over every
assignment p of the intermediate channels of qudit m+1 (enumerated in the
same order as the basis):

	Σ_p Π_pos F(i, jj[pos], τ, p[pos+1])†[jj[pos+1], p[pos]]
	          · F(i', jj'[pos], τ, p[pos+1])[p[pos], jj'[pos+1]]
	    · B(h, τ, τ, p[0])[i, i']

with jj and jj' padded with the leading τ and p extended with k.

	h:   second-to-last channel of qudit m (τ for single-outcome qudits)
	i:   last channel of qudit m before the braid, i' after it
	jj:  qudit m+1 before the braid, jj' after it
*/
func L(k, h, iPrime, i Label, jjPrime, jj Qudit) complex128 {
	q := len(jj)
	if q == 0 || len(jjPrime) != q {
		return 0
	}

	before, after := jj.padded(), jjPrime.padded()
	channels := make([]Label, q+1)
	channels[q] = k

	var component complex128
	for p := range combinations(q) {
		copy(channels, p)

		product := complex(1, 0)
		for pos := 0; pos < q; pos++ {
			product *= F(i, before[pos], Tau, channels[pos+1]).Dagger().At(before[pos+1], channels[pos]) *
				F(iPrime, after[pos], Tau, channels[pos+1]).At(channels[pos], after[pos+1])
		}

		component += product * B(h, Tau, Tau, channels[0]).At(i, iPrime)
	}

	return component
}

/*
S is the sewing matrix element joining the L contraction of qudit m into the
root-level fusion tree where qudit m meets qudit m+1. It sums over both
values of the hidden channel kk:

	Σ_kk F(jmoo, i, jj.Last(), jm)[jmo, kk] · L(kk, ...) · F(jmoo, i', jj'.Last(), jm)†[kk, jmo']

	jm:   root fusing qudit m+1 into the tree
	jmo:  root (or qudit outcome) entering that fusion before the braid,
	      jmo' after it
	jmoo: the grandparent label one level further up
*/
func S(jm, jmo, jmoo, jmoPrime, h, iPrime, i Label, jjPrime, jj Qudit) complex128 {
	if len(jj) == 0 || len(jjPrime) == 0 {
		return 0
	}

	left := F(jmoo, i, jj.Last(), jm)
	right := F(jmoo, iPrime, jjPrime.Last(), jm).Dagger()

	var component complex128
	for _, kk := range [...]Label{Vacuum, Tau} {
		component += left.At(jmo, kk) * L(kk, h, iPrime, i, jjPrime, jj) * right.At(kk, jmoPrime)
	}

	return component
}
