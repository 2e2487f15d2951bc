package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gocarina/gocsv"
)

// 年間の日射量・太陽位置データ
type SolarResource struct {
	_theta_z_ns []float64 // 太陽天頂角, rad, [n]
	_a_sun_ns   []float64 // 太陽方位角, rad, [n]
	_i_dn_ns    []float64 // 法線面直達日射量, W/m2, [n]
	_i_sky_ns   []float64 // 水平面天空日射量, W/m2, [n]
	_itv        Interval  // 時間間隔
}

/*
Args:
	theta_z_ns: 太陽天頂角, rad, [n]
	a_sun_ns: 太陽方位角, rad, [n]
	i_dn_ns: 法線面直達日射量, W/m2, [n]
	i_sky_ns: 水平面天空日射量, W/m2, [n]
	itv: 時間間隔
*/
func NewSolarResource(theta_z_ns, a_sun_ns, i_dn_ns, i_sky_ns []float64, itv Interval) *SolarResource {
	return &SolarResource{
		_theta_z_ns: theta_z_ns,
		_a_sun_ns:   a_sun_ns,
		_i_dn_ns:    i_dn_ns,
		_i_sky_ns:   i_sky_ns,
		_itv:        itv,
	}
}

/*
日射量・太陽位置データを作成する。

Args:
	method: 日射量データの指定方法（"file" または "ees"）
	itv: 時間間隔
	file_path: 日射量データのファイルパス（method が "file" の場合に用いる）
	region: 地域の区分（method が "ees" の場合に用いる）

Returns:
	SolarResource クラス
*/
func make_solar_resource(method string, itv Interval, file_path string, region Region) *SolarResource {
	if method == "file" {
		log.Printf("Load solar resource data from `%s`", file_path)
		return _make_from_csv(file_path, itv)
	} else if method == "ees" {
		log.Printf("make solar resource data based on the EES region")
		return _make_from_region(region, itv)
	} else {
		panic(method)
	}
}

// データの数を取得する。
func (self *SolarResource) number_of_data() int {
	return self._itv.get_annual_number_of_steps()
}

// 日射量データのCSVファイルの1行
type SolarResourceRow struct {
	Longitude                   string  `csv:"longitude"`
	Latitude                    string  `csv:"latitude"`
	NormalDirectSolarRadiation  float64 `csv:"normal_direct_solar_radiation"`
	HorizontalSkySolarRadiation float64 `csv:"horizontal_sky_solar_radiation"`
}

/*
日射量データのCSVファイルを読み込む。

Args:
	file_path: 日射量データのファイルのパス
	itv: Interval 列挙体

Returns:
	SolarResource クラス

Notes:
	緯度・経度は1行目にのみ記載されるものとする。
	データは1時間間隔の8760行とし、指定されたインターバルへ補間する。
*/
func _make_from_csv(file_path string, itv Interval) *SolarResource {

	if _, err := os.Stat(file_path); os.IsNotExist(err) {
		panic(fmt.Sprintf("Error File %s is not exist.", file_path))
	}

	file, err := os.Open(file_path)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	var rows []*SolarResourceRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		panic(err)
	}

	if len(rows) != 8760 {
		panic("Error Row length of the file should be 8760.")
	}

	latitude, err := strconv.ParseFloat(rows[0].Latitude, 64)
	if err != nil {
		panic(err)
	}
	longitude, err := strconv.ParseFloat(rows[0].Longitude, 64)
	if err != nil {
		panic(err)
	}

	phi_loc, lambda_loc := math.Pi/180*latitude, math.Pi/180*longitude

	// 太陽位置
	//   (1) ステップ n における太陽天頂角, rad, [n]
	//   (2) ステップ n における太陽方位角, rad, [n]
	theta_z_ns, a_sun_ns := calc_solar_position(phi_loc, lambda_loc, itv)

	// 法線面直達日射量, W/m2
	i_dn_hourly := make([]float64, len(rows))
	for i, row := range rows {
		i_dn_hourly[i] = row.NormalDirectSolarRadiation
	}
	i_dn_ns := _interpolate(i_dn_hourly, itv, false)

	// 水平面天空日射量, W/m2
	i_sky_hourly := make([]float64, len(rows))
	for i, row := range rows {
		i_sky_hourly[i] = row.HorizontalSkySolarRadiation
	}
	i_sky_ns := _interpolate(i_sky_hourly, itv, false)

	return NewSolarResource(theta_z_ns, a_sun_ns, i_dn_ns, i_sky_ns, itv)
}

/*
地域の区分に応じて日射量データを作成する。

Args:
	rgn: 地域の区分
	itv: Interval 列挙体

Returns:
	SolarResource クラス
*/
func _make_from_region(rgn Region, itv Interval) *SolarResource {

	// 地域の区分に応じた気象データの読み込み
	//   (1) ステップ n における法線面直達日射量, W/m2, [n]
	//   (2) ステップ n における水平面天空日射量, W/m2, [n]
	i_dn_ns, i_sky_ns := _load(rgn, itv)

	// 緯度, rad & 経度, rad
	phi_loc, lambda_loc := rgn.get_phi_loc_and_lambda_loc()

	// 太陽位置
	//   (1) ステップ n における太陽天頂角, rad, [n]
	//   (2) ステップ n における太陽方位角, rad, [n]
	theta_z_ns, a_sun_ns := calc_solar_position(phi_loc, lambda_loc, itv)

	return NewSolarResource(theta_z_ns, a_sun_ns, i_dn_ns, i_sky_ns, itv)
}

/*
地域の区分に応じて気象データを読み込み、指定された時間間隔で必要に応じて補間を行う。

Args:
	rgn: 地域の区分
	itv: Interval 列挙体

Returns:
	以下の2項目
		(1) ステップ n における法線面直達日射量, W/m2, [n]
		(2) ステップ n における水平面天空日射量, W/m2, [n]

Notes:
	interval = "1h" -> n = 8760
	interval = "30m" -> n = 8760 * 2
	interval = "15m" -> n = 8760 * 4
*/
func _load(rgn Region, itv Interval) ([]float64, []float64) {

	// 地域の区分に応じたファイル名の取得
	weather_data_filename := _get_filename(rgn)

	// ファイル読み込み
	path_and_filename := filepath.Join("expanded_amedas/", weather_data_filename)

	file, err := os.Open(path_and_filename)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// ヘッダー2行を読み飛ばす。
	_, _ = reader.Read()
	_, _ = reader.Read()

	records, err := reader.ReadAll()
	if err != nil {
		log.Fatal(err)
	}

	// データの整形（3列目: 法線面直達日射量, 4列目: 水平面天空日射量）
	usecols := []int{3, 4}
	weather := make([][]float64, len(usecols))
	for i, col := range usecols {
		weather[i] = make([]float64, len(records))
		for j, record := range records {
			weather[i][j], _ = strconv.ParseFloat(record[col], 64)
		}
	}

	// ステップ n における法線面直達日射量, W/m2
	i_dn_ns := _interpolate(weather[0], itv, true)

	// ステップ n における水平面天空日射量, W/m2
	i_sky_ns := _interpolate(weather[1], itv, true)

	return i_dn_ns, i_sky_ns
}

/*
1時間ごとの8760データを指定された間隔のデータに補間する。
"1h" 1時間間隔の場合、 n = 8760
"30m" 30分間隔の場合、 n = 8760 * 2 = 17520
"15m" 15分間隔の場合、 n = 8760 * 4 = 35040

Args:
	data: 1時間ごとのデータ [8760]
	interval: 生成するデータの時間間隔
	rolling: rolling するか否か。データが1時始まりの場合は最終行の 12/31 2400 のデータを 1/1 000 に持ってくるため、この値は true にすること。

Returns:
	指定する時間間隔に補間されたデータ [n]
*/
func _interpolate(data []float64, interval Interval, rolling bool) []float64 {
	if interval == IntervalH1 {

		if rolling {
			// 拡張アメダスのデータが1月1日の1時から始まっているため1時間ずらして0時始まりのデータに修正する。
			return roll(data, 1)
		} else {
			return data
		}
	} else {
		// 補間比率の係数
		alpha := map[Interval][]float64{
			IntervalM30: {1.0, 0.5},
			IntervalM15: {1.0, 0.75, 0.5, 0.25},
		}[interval]

		// 補間元データ1, 補間元データ2
		var data1, data2 []float64
		if rolling {
			// 拡張アメダスのデータが1月1日の1時から始まっているため1時間ずらして0時始まりのデータに修正する。
			data1 = roll(data, 1) // 0時=24時のため、1回分前のデータを参照
			data2 = data
		} else {
			data1 = data
			data2 = roll(data, -1)
		}

		ndata := len(data1)                  // 補間元のデータ数
		nalpha := len(alpha)                 // 補間比率の係数の数
		n := len(data1) * nalpha             // 補間後のデータ数
		data_interp_1d := make([]float64, n) // 補間後のデータ
		off := 0
		for i := 0; i < ndata; i++ {
			for j := 0; j < nalpha; j++ {
				data_interp_1d[off] = alpha[j]*data1[i] + (1.0-alpha[j])*data2[i]
				off++
			}
		}

		return data_interp_1d
	}
}

func roll(slice []float64, shift int) []float64 {
	length := len(slice)
	shift %= length
	if shift < 0 {
		shift += length
	}
	result := make([]float64, 0, length)
	result = append(result, slice[length-shift:]...)
	result = append(result, slice[:length-shift]...)
	return result
}

/*
地域の区分に応じたファイル名を取得する。

Args:
	rgn: 地域の区分

Returns:
	地域の区分に応じたファイル名（CSVファイル）（拡張子も含む）
*/
func _get_filename(rgn Region) string {
	weather_data_filename := map[Region]string{
		Region1: "01_kitami.csv",     // 1地域（北見）
		Region2: "02_iwamizawa.csv",  // 2地域（岩見沢）
		Region3: "03_morioka.csv",    // 3地域（盛岡）
		Region4: "04_nagano.csv",     // 4地域（長野）
		Region5: "05_utsunomiya.csv", // 5地域（宇都宮）
		Region6: "06_okayama.csv",    // 6地域（岡山）
		Region7: "07_miyazaki.csv",   // 7地域（宮崎）
		Region8: "08_naha.csv",       // 8地域（那覇）
	}[rgn]

	return weather_data_filename
}
