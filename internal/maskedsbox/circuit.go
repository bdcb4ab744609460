// Copyright 2024 The maskedaes-go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package maskedsbox

// Substitute evaluates the S-box on the two-share value (data, mask) and
// returns a re-masked share pair. The invariant is
//
//	outData ^ outMask == sbox[data ^ mask]
//
// for all 65536 inputs; the unmasked value data^mask is never materialized.
//
// The circuit is the Boyar-Peralta composite-field decomposition of the
// AES S-box. The forward linear layer (t1..t27), the shared multiplier
// network (m1..m63, nonlinear gates through SecureAND), and the output
// linear layer (l0..l29) each run twice in lockstep, once per share. Only
// the affine complement at the end touches a single share: constants fold
// into the data share so that the XOR of the shares stays correct.
//
// Bit i of each input is carried in lane 0 of the i-th slice variable;
// higher lanes hold the lanes of neighboring bits and are discarded when
// the output bytes are packed.
func Substitute(data, mask byte) (outData, outMask byte) {
	u0, u0m := data>>0, mask>>0
	u1, u1m := data>>1, mask>>1
	u2, u2m := data>>2, mask>>2
	u3, u3m := data>>3, mask>>3
	u4, u4m := data>>4, mask>>4
	u5, u5m := data>>5, mask>>5
	u6, u6m := data>>6, mask>>6
	u7, u7m := data>>7, mask>>7

	// Top linear layer: shares XOR independently.
	t1, t1m := u7^u4, u7m^u4m
	t2, t2m := u7^u2, u7m^u2m
	t3, t3m := u7^u1, u7m^u1m
	t4, t4m := u4^u2, u4m^u2m
	t5, t5m := u3^u1, u3m^u1m
	t6, t6m := t1^t5, t1m^t5m
	t7, t7m := u6^u5, u6m^u5m
	t8, t8m := u0^t6, u0m^t6m
	t9, t9m := u0^t7, u0m^t7m
	t10, t10m := t6^t7, t6m^t7m
	t11, t11m := u6^u2, u6m^u2m
	t12, t12m := u5^u2, u5m^u2m
	t13, t13m := t3^t4, t3m^t4m
	t14, t14m := t6^t11, t6m^t11m
	t15, t15m := t5^t11, t5m^t11m
	t16, t16m := t5^t12, t5m^t12m
	t17, t17m := t9^t16, t9m^t16m
	t18, t18m := u4^u0, u4m^u0m
	t19, t19m := t7^t18, t7m^t18m
	t20, t20m := t1^t19, t1m^t19m
	t21, t21m := u1^u0, u1m^u0m
	t22, t22m := t7^t21, t7m^t21m
	t23, t23m := t2^t22, t2m^t22m
	t24, t24m := t2^t10, t2m^t10m
	t25, t25m := t20^t17, t20m^t17m
	t26, t26m := t3^t16, t3m^t16m
	t27, t27m := t1^t12, t1m^t12m

	// Shared multiplier network: every AND goes through the secure gate.
	m1, m1m := SecureAND(t13, t13m, t6, t6m, sandCorrection)
	m2, m2m := SecureAND(t23, t23m, t8, t8m, sandCorrection)
	m3, m3m := t14^m1, t14m^m1m
	m4, m4m := SecureAND(t19, t19m, u0, u0m, sandCorrection)
	m5, m5m := m4^m1, m4m^m1m
	m6, m6m := SecureAND(t3, t3m, t16, t16m, sandCorrection)
	m7, m7m := SecureAND(t22, t22m, t9, t9m, sandCorrection)
	m8, m8m := t26^m6, t26m^m6m
	m9, m9m := SecureAND(t20, t20m, t17, t17m, sandCorrection)
	m10, m10m := m9^m6, m9m^m6m
	m11, m11m := SecureAND(t1, t1m, t15, t15m, sandCorrection)
	m12, m12m := SecureAND(t4, t4m, t27, t27m, sandCorrection)
	m13, m13m := m12^m11, m12m^m11m
	m14, m14m := SecureAND(t2, t2m, t10, t10m, sandCorrection)
	m15, m15m := m14^m11, m14m^m11m
	m16, m16m := m3^m2, m3m^m2m
	m17, m17m := m5^t24, m5m^t24m
	m18, m18m := m8^m7, m8m^m7m
	m19, m19m := m10^m15, m10m^m15m
	m20, m20m := m16^m13, m16m^m13m
	m21, m21m := m17^m15, m17m^m15m
	m22, m22m := m18^m13, m18m^m13m
	m23, m23m := m19^t25, m19m^t25m
	m24, m24m := m22^m23, m22m^m23m
	m25, m25m := SecureAND(m22, m22m, m20, m20m, sandCorrection)
	m26, m26m := m21^m25, m21m^m25m
	m27, m27m := m20^m21, m20m^m21m
	m28, m28m := m23^m25, m23m^m25m
	m29, m29m := SecureAND(m28, m28m, m27, m27m, sandCorrection)
	m30, m30m := SecureAND(m26, m26m, m24, m24m, sandCorrection)
	m31, m31m := SecureAND(m20, m20m, m23, m23m, sandCorrection)
	m32, m32m := SecureAND(m27, m27m, m31, m31m, sandCorrection)
	m33, m33m := m27^m25, m27m^m25m
	m34, m34m := SecureAND(m21, m21m, m22, m22m, sandCorrection)
	m35, m35m := SecureAND(m24, m24m, m34, m34m, sandCorrection)
	m36, m36m := m24^m25, m24m^m25m
	m37, m37m := m21^m29, m21m^m29m
	m38, m38m := m32^m33, m32m^m33m
	m39, m39m := m23^m30, m23m^m30m
	m40, m40m := m35^m36, m35m^m36m
	m41, m41m := m38^m40, m38m^m40m
	m42, m42m := m37^m39, m37m^m39m
	m43, m43m := m37^m38, m37m^m38m
	m44, m44m := m39^m40, m39m^m40m
	m45, m45m := m42^m41, m42m^m41m
	m46, m46m := SecureAND(m44, m44m, t6, t6m, sandCorrection)
	m47, m47m := SecureAND(m40, m40m, t8, t8m, sandCorrection)
	m48, m48m := SecureAND(m39, m39m, u0, u0m, sandCorrection)
	m49, m49m := SecureAND(m43, m43m, t16, t16m, sandCorrection)
	m50, m50m := SecureAND(m38, m38m, t9, t9m, sandCorrection)
	m51, m51m := SecureAND(m37, m37m, t17, t17m, sandCorrection)
	m52, m52m := SecureAND(m42, m42m, t15, t15m, sandCorrection)
	m53, m53m := SecureAND(m45, m45m, t27, t27m, sandCorrection)
	m54, m54m := SecureAND(m41, m41m, t10, t10m, sandCorrection)
	m55, m55m := SecureAND(m44, m44m, t13, t13m, sandCorrection)
	m56, m56m := SecureAND(m40, m40m, t23, t23m, sandCorrection)
	m57, m57m := SecureAND(m39, m39m, t19, t19m, sandCorrection)
	m58, m58m := SecureAND(m43, m43m, t3, t3m, sandCorrection)
	m59, m59m := SecureAND(m38, m38m, t22, t22m, sandCorrection)
	m60, m60m := SecureAND(m37, m37m, t20, t20m, sandCorrection)
	m61, m61m := SecureAND(m42, m42m, t1, t1m, sandCorrection)
	m62, m62m := SecureAND(m45, m45m, t4, t4m, sandCorrection)
	m63, m63m := SecureAND(m41, m41m, t2, t2m, sandCorrection)

	// Bottom linear layer.
	l0, l0m := m61^m62, m61m^m62m
	l1, l1m := m50^m56, m50m^m56m
	l2, l2m := m46^m48, m46m^m48m
	l3, l3m := m47^m55, m47m^m55m
	l4, l4m := m54^m58, m54m^m58m
	l5, l5m := m49^m61, m49m^m61m
	l6, l6m := m62^l5, m62m^l5m
	l7, l7m := m46^l3, m46m^l3m
	l8, l8m := m51^m59, m51m^m59m
	l9, l9m := m52^m53, m52m^m53m
	l10, l10m := m53^l4, m53m^l4m
	l11, l11m := m60^l2, m60m^l2m
	l12, l12m := m48^m51, m48m^m51m
	l13, l13m := m50^l0, m50m^l0m
	l14, l14m := m52^m61, m52m^m61m
	l15, l15m := m55^l1, m55m^l1m
	l16, l16m := m56^l0, m56m^l0m
	l17, l17m := m57^l1, m57m^l1m
	l18, l18m := m58^l8, m58m^l8m
	l19, l19m := m63^l4, m63m^l4m
	l20, l20m := l0^l1, l0m^l1m
	l21, l21m := l1^l7, l1m^l7m
	l22, l22m := l3^l12, l3m^l12m
	l23, l23m := l18^l2, l18m^l2m
	l24, l24m := l15^l9, l15m^l9m
	l25, l25m := l6^l10, l6m^l10m
	l26, l26m := l7^l9, l7m^l9m
	l27, l27m := l8^l10, l8m^l10m
	l28, l28m := l11^l14, l11m^l14m
	l29, l29m := l11^l17, l11m^l17m

	// Output bits; the S-box affine constant 0x63 complements bits
	// 0, 1, 5 and 6 of the data share only.
	s7, s7m := l6^l24, l6m^l24m
	s6, s6m := ^(l16 ^ l26), l16m^l26m
	s5, s5m := ^(l19 ^ l28), l19m^l28m
	s4, s4m := l6^l21, l6m^l21m
	s3, s3m := l20^l22, l20m^l22m
	s2, s2m := l25^l29, l25m^l29m
	s1, s1m := ^(l13 ^ l27), l13m^l27m
	s0, s0m := ^(l6 ^ l23), l6m^l23m

	outData = (s0&1)<<0 |
		(s1&1)<<1 |
		(s2&1)<<2 |
		(s3&1)<<3 |
		(s4&1)<<4 |
		(s5&1)<<5 |
		(s6&1)<<6 |
		(s7&1)<<7
	outMask = (s0m&1)<<0 |
		(s1m&1)<<1 |
		(s2m&1)<<2 |
		(s3m&1)<<3 |
		(s4m&1)<<4 |
		(s5m&1)<<5 |
		(s6m&1)<<6 |
		(s7m&1)<<7
	return outData, outMask
}
