package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"net/http"
	"os"
)

/*
近接影計算処理の実行

Args:
	settings_path: アレイ仕様JSONファイルへのパス
	output_data_dir: 出力フォルダへのパス
	weather_specify_method: 日射量データの指定方法
	weather_file_path: 日射量データのファイルパス
	region: 地域の区分
	itv: 時間間隔
*/
func run(
	settings_path string,
	output_data_dir string,
	weather_specify_method string,
	weather_file_path string,
	region int,
	itv Interval,
) {

	// ---- 事前準備 ----

	// 出力ディレクトリの作成
	if _, err := os.Stat(output_data_dir); os.IsNotExist(err) {
		os.Mkdir(output_data_dir, 0755)
	}

	_, err := os.Stat(output_data_dir)
	if os.IsNotExist(err) {
		log.Fatalf("`%s` is not a directory", output_data_dir)
	}

	// アレイ仕様JSONファイルの読み込み
	log.Printf("アレイ仕様JSONファイルの読み込み開始")
	var ss Settings
	if len(settings_path) >= 4 && settings_path[0:4] == "http" {
		resp, err := http.Get(settings_path)
		if err != nil {
			log.Fatal(err)
		}
		defer resp.Body.Close()
		body, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			log.Fatal(err)
		}
		json.Unmarshal(body, &ss)
	} else {
		file, err := os.Open(settings_path)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		bytes, err := ioutil.ReadAll(file)
		if err != nil {
			log.Fatal(err)
		}
		json.Unmarshal(bytes, &ss)
	}

	// アレイの近接影モデルの構築
	log.Printf("アレイの近接影モデルの構築開始")
	shd := NewArrayShading(ss)

	// 日射量・太陽位置データの生成
	log.Printf("日射量データの生成開始")
	rsrc := make_solar_resource(
		weather_specify_method,
		itv,
		weather_file_path,
		Region(fmt.Sprint(region)),
	)

	// ---- 計算 ----

	// アレイ面に入射する日射量の各成分（影の考慮なし）, W/m2, [n]
	i_srf_dn_j_ns, i_srf_sky_j_ns, i_srf_ref_j_ns := get_i_srf_j_ns(rsrc, shd.get_beta_w_j(), shd.get_alpha_w_j())

	// 影を考慮した傾斜面日射量の計算
	log.Printf("近接影計算開始")
	results := calc_shaded_irradiance_j_ns(
		shd,
		rsrc._theta_z_ns,
		rsrc._a_sun_ns,
		i_srf_dn_j_ns,
		i_srf_sky_j_ns,
		i_srf_ref_j_ns,
	)

	// ---- 計算結果ファイルの保存 ----

	recorder := NewRecorder(rsrc.number_of_data())
	for n, res := range results {
		recorder.recording(n, res)
	}
	recorder.export_csv(output_data_dir)
}

func main() {
	var settings_path string
	flag.StringVar(&settings_path, "input", "", "計算を実行するアレイ仕様JSONファイル")

	var output_data_dir string
	flag.StringVar(&output_data_dir, "o", ".", "出力フォルダ")

	var weather string
	flag.StringVar(&weather, "weather", "ees", "日射量データの作成方法を指定します。")

	var weather_path string
	flag.StringVar(&weather_path, "weather_path", "", "日射量データの絶対パスを指定します。weatherオプションでfileが指定された場合は必ず指定します。")

	var region int
	flag.IntVar(&region, "region", 0, "地域の区分を指定します。日射量データの作成方法としてeesを指定した場合には必ず指定します。")

	var interval string
	flag.StringVar(&interval, "interval", "15m", "計算の時間間隔を指定します。（1h, 30m, 15m）")

	flag.Parse()

	if settings_path == "" {
		log.Fatal("アレイ仕様JSONファイルを -input オプションで指定してください。")
	}

	run(
		settings_path,
		output_data_dir,
		weather,
		weather_path,
		region,
		IntervalFromString(interval),
	)
}
