package main

import (
	"gonum.org/v1/gonum/floats"
)

// ステップ n における近接影計算の結果
type ShadingResult struct {
	f_shd_dn_j_n  float64 // 直達日射に対する透過率, -
	f_shd_sky_j   float64 // 天空日射に対する透過率, -
	f_shd_ref_j   float64 // 地面反射日射に対する透過率, -
	phi_p_j_n     float64 // プロファイル角, rad
	i_srf_dn_j_n  float64 // 影を考慮した傾斜面日射量の直達成分, W/m2
	i_srf_sky_j_n float64 // 影を考慮した傾斜面日射量の天空成分, W/m2
	i_srf_ref_j_n float64 // 影を考慮した傾斜面日射量の地面反射成分, W/m2
	i_srf_j_n     float64 // 影を考慮した傾斜面日射量の合計, W/m2
}

/*
ステップ n における影を考慮した傾斜面日射量を計算する。

Args:
	shd: ArrayShading クラス
	theta_z_n: ステップ n における太陽天頂角, rad
	a_sun_n: ステップ n における太陽方位角, rad
	i_srf_dn_j_n: ステップ n における傾斜面日射量の直達成分（影の考慮なし）, W/m2
	i_srf_sky_j_n: ステップ n における傾斜面日射量の天空成分（影の考慮なし）, W/m2
	i_srf_ref_j_n: ステップ n における傾斜面日射量の地面反射成分（影の考慮なし）, W/m2

Returns:
	ShadingResult クラス

Notes:
	直達成分に対する透過率のみが太陽位置に依存し、ステップごとに計算される。
	天空成分・地面反射成分に対する透過率はアレイの構築時に計算された定数である。
*/
func calc_shaded_irradiance_j_n(
	shd ArrayShading,
	theta_z_n, a_sun_n float64,
	i_srf_dn_j_n, i_srf_sky_j_n, i_srf_ref_j_n float64,
) *ShadingResult {

	// ステップ n における直達日射に対する透過率, - とプロファイル角, rad
	f_shd_dn_j_n, phi_p_j_n := shd.get_f_shd_dn_j(theta_z_n, a_sun_n)

	// 天空日射に対する透過率, -
	f_shd_sky_j := shd.get_f_shd_sky_j()

	// 地面反射日射に対する透過率, -
	f_shd_ref_j := shd.get_f_shd_ref_j()

	// 影を考慮した傾斜面日射量の各成分, W/m2
	i_dn := i_srf_dn_j_n * f_shd_dn_j_n
	i_sky := i_srf_sky_j_n * f_shd_sky_j
	i_ref := i_srf_ref_j_n * f_shd_ref_j

	return &ShadingResult{
		f_shd_dn_j_n:  f_shd_dn_j_n,
		f_shd_sky_j:   f_shd_sky_j,
		f_shd_ref_j:   f_shd_ref_j,
		phi_p_j_n:     phi_p_j_n,
		i_srf_dn_j_n:  i_dn,
		i_srf_sky_j_n: i_sky,
		i_srf_ref_j_n: i_ref,
		i_srf_j_n:     i_dn + i_sky + i_ref,
	}
}

/*
年間の全ステップについて影を考慮した傾斜面日射量を計算する。

Args:
	shd: ArrayShading クラス
	theta_z_ns: ステップ n における太陽天頂角, rad, [n]
	a_sun_ns: ステップ n における太陽方位角, rad, [n]
	i_srf_dn_j_ns: ステップ n における傾斜面日射量の直達成分（影の考慮なし）, W/m2, [n]
	i_srf_sky_j_ns: ステップ n における傾斜面日射量の天空成分（影の考慮なし）, W/m2, [n]
	i_srf_ref_j_ns: ステップ n における傾斜面日射量の地面反射成分（影の考慮なし）, W/m2, [n]

Returns:
	ShadingResult クラスのリスト, [n]
*/
func calc_shaded_irradiance_j_ns(
	shd ArrayShading,
	theta_z_ns, a_sun_ns []float64,
	i_srf_dn_j_ns, i_srf_sky_j_ns, i_srf_ref_j_ns []float64,
) []*ShadingResult {

	n := len(theta_z_ns)

	// 天空成分・地面反射成分は定数の透過率を乗じるだけで良い。
	i_sky_shd_j_ns := make([]float64, n)
	floats.ScaleTo(i_sky_shd_j_ns, shd.get_f_shd_sky_j(), i_srf_sky_j_ns)

	i_ref_shd_j_ns := make([]float64, n)
	floats.ScaleTo(i_ref_shd_j_ns, shd.get_f_shd_ref_j(), i_srf_ref_j_ns)

	results := make([]*ShadingResult, n)
	for i := 0; i < n; i++ {

		// ステップ n における直達日射に対する透過率, - とプロファイル角, rad
		f_shd_dn_j_n, phi_p_j_n := shd.get_f_shd_dn_j(theta_z_ns[i], a_sun_ns[i])

		i_dn := i_srf_dn_j_ns[i] * f_shd_dn_j_n

		results[i] = &ShadingResult{
			f_shd_dn_j_n:  f_shd_dn_j_n,
			f_shd_sky_j:   shd.get_f_shd_sky_j(),
			f_shd_ref_j:   shd.get_f_shd_ref_j(),
			phi_p_j_n:     phi_p_j_n,
			i_srf_dn_j_n:  i_dn,
			i_srf_sky_j_n: i_sky_shd_j_ns[i],
			i_srf_ref_j_n: i_ref_shd_j_ns[i],
			i_srf_j_n:     i_dn + i_sky_shd_j_ns[i] + i_ref_shd_j_ns[i],
		}
	}

	return results
}
