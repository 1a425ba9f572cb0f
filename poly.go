// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxp

// Polynomial coefficients are stored as Q60 integers (c·2^60), lowest power first.
// They were fitted on Chebyshev nodes over the reduced argument ranges.
type poly []int64

// q60 holds any coefficient below 8 in magnitude.
var q60 = workFormat(3, 60)

var (
	// e^r, r in [0, ln2).
	expLow = poly{1152925531655245824, 1152631658168395264, 579767117770284288, 179139653241233536, 68277284694326464}
	expMid = poly{1152921504543366016, 1152921516322741504, 576460398406486784, 192157645056656608,
		48015601319081048, 9676723263277060, 1486827600497491, 324588384300515}

	// log2((1+s)/(1-s))/s as a polynomial in s², |s| <= 3-2√2.
	log2Low = poly{3326628286611503616, 1108781992351858816, 681405237473613440}
	log2Mid = poly{3326628274461039616, 1108876090015512064, 665327199600771712, 474939635213628800, 386860065738536448}

	// sin(r)/r as a polynomial in r², |r| <= π/4.
	sinLow = poly{1152921452676135296, -192134388764568576, 9450188301758996}
	sinMid = poly{1152921504606837248, -192153584074227680, 9607677907077062, -228742540019873, 3143908158047}

	// cos(r) as a polynomial in r², |r| <= π/4.
	cosLow = poly{1152921504356747008, -576460466866034048, 48032167033020728, -1575023447853854}
	cosMid = poly{1152921504606846976, -576460752303236224, 48038396008342848, -1601279583895244, 28592724559683, -314388880395}

	// atan(t)/t as a polynomial in t², |t| <= √2-1.
	atanLow = poly{1152921499057468800, -384284393413972224, 228780173683057472, -136233522350252128}
	atanMid = poly{1152921504606846976, -384307168200456512, 230584298975956864, -164702743848512096,
		128084517150298816, -104392077210073152, 83915197086179616, -50028001497524616}

	// linear sqrt seeds c0 + c1·m on [0.5, 0.75), [0.75, 1), [1, 1.5), [1.5, 2).
	sqrtSeeds = [4]poly{
		{452289766587806592, 731010653749757952},
		{537158780033486208, 617052045757107840},
		{639634322031037824, 516902590386064896},
		{759657231871142400, 436321685899882816},
	}
)

// eval returns Σ c_i·x^i computed by Horner's rule in x's format.
func (p poly) eval(x Value) Value {
	f := x.f
	acc := coeff(p[len(p)-1], f)
	for i := len(p) - 2; i >= 0; i-- {
		acc = acc.Mul(x).Add(coeff(p[i], f))
	}
	return acc
}

// evalOdd returns x·p(x²).
func (p poly) evalOdd(x Value) Value {
	return p.eval(x.Mul(x)).Mul(x)
}

func coeff(c int64, f Format) Value {
	return q60.fromBits(c).Convert(f)
}
