// internal/srs/sm2.go
//
// SM-2 (SuperMemo-2) スケジューラの純粋関数実装。
// DBにもI/Oにも依存せず、単体でテスト可能であること。
package srs

// Rating は呼び出し側が送る0-3スケールの評価です
type Rating int

const (
	Again  Rating = 0 // 忘れた
	Hard   Rating = 1
	Medium Rating = 2
	Easy   Rating = 3
)

const (
	// MinEase はease factorの下限。SM-2の慣例で1.3、これ未満には絶対にしない
	MinEase = 1.3
	// InitialEase はカード作成時のease factor
	InitialEase = 2.5

	// 成功1回目・2回目の固定インターバル（日）。easeに関係なく固定
	firstInterval  = 1.0
	secondInterval = 6.0

	// qualityFailFloor は内部0-5スケールでの合否境界。
	// quality < 3 でインターバルと連続正解数をリセットする。
	// 注意: Hard(rating=1)はquality=3にマップされるため、ここでは「成功」扱い。
	qualityFailFloor = 3

	// lapseRatingMax は0-3の元スケールでのlapse境界。
	// rating < 2 をlapseとして数える。qualityFailFloorとは別の閾値であり、
	// 同じ閾値の言い換えではないことに注意（Hardはlapseだがリセットされない）。
	lapseRatingMax = 2
)

// qualityByRating は0-3のratingを内部0-5のqualityに写す固定テーブル
var qualityByRating = [4]int{0, 3, 4, 5}

// IsValid はratingが0-3の範囲内であることを検証します
func (r Rating) IsValid() bool {
	return r >= Again && r <= Easy
}

// Quality はSM-2内部の0-5スケール値を返します
func (r Rating) Quality() int {
	return qualityByRating[r]
}

// IsLapse はこの評価をlapseとして数えるかを返します（0-3スケールの閾値）
func (r Rating) IsLapse() bool {
	return int(r) < lapseRatingMax
}

// IsCorrect は監査レコードに記録する正誤フラグです（rating >= 2 で正解）
func (r Rating) IsCorrect() bool {
	return int(r) >= lapseRatingMax
}

// Result はスケジューラの出力です
type Result struct {
	Interval    float64 // 日数。整数ではなく浮動小数点
	Ease        float64
	Repetitions int
}

// Schedule は (rating, 現在のease, 現在のinterval, 連続成功回数) から
// 次の (interval, ease, repetitions) を計算します。
//
//  1. ratingを0-5のqualityに写像
//  2. ease' = ease + (0.1 - (5-q)*(0.08 + (5-q)*0.02))
//  3. ease' を1.3でクランプ（上限なし）
//  4. quality < 3 ならinterval=0, reps=0にリセット。
//     それ以外は reps==0→1日, reps==1→6日, 以降は interval*ease'。
func Schedule(rating Rating, ease, interval float64, repetitions int) Result {
	q := rating.Quality()

	newEase := ease + (0.1 - float64(5-q)*(0.08+float64(5-q)*0.02))
	if newEase < MinEase {
		newEase = MinEase
	}

	if q < qualityFailFloor {
		return Result{Interval: 0.0, Ease: newEase, Repetitions: 0}
	}

	var newInterval float64
	switch repetitions {
	case 0:
		newInterval = firstInterval
	case 1:
		newInterval = secondInterval
	default:
		newInterval = interval * newEase
	}

	return Result{Interval: newInterval, Ease: newEase, Repetitions: repetitions + 1}
}
