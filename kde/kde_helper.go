package kde

import (
	"context"
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/uyouii/kfactor/common"
	"github.com/uyouii/kfactor/model"
	"github.com/uyouii/kfactor/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

func getMinCalculatePointCnt() int {
	return KdeMinCalculatePointCnt
}

// CalculateKdeConfidences fits a kde to a simulated sample and reads the
// requested quantiles off it. With clip set, values more than
// ClipLowerZScore/ClipUpperZScore standard deviations from the mean are
// dropped first. Nil quantiles means AllCalculateQuantiles.
func CalculateKdeConfidences(ctx context.Context, values []float64,
	quantiles []float64, clip bool) (res *model.KdeConfidence, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("CalculateKdeConfidences recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()), zap.Int("valueCnt", len(values)))
			res, err = nil, errors.Wrapf(common.ErrorInvalidValue, "panic: %v", r)
		}
	}()

	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		finite = append(finite, v)
	}

	if len(finite) < getMinCalculatePointCnt() {
		logger.Error("point too little, skip calculate", zap.Int("cnt", len(finite)))
		return nil, errors.Wrapf(common.ErrorInvalidValue, "need %d finite values, got %d",
			getMinCalculatePointCnt(), len(finite))
	}

	if quantiles == nil {
		quantiles = AllCalculateQuantiles
	}

	mean, stddev := stat.MeanStdDev(finite, nil)

	var clipRange *model.Clip
	if clip {
		clipRange = &model.Clip{
			Upper: mean + stddev*ClipUpperZScore,
			Lower: math.Max(mean-stddev*ClipLowerZScore, 0),
		}
	}

	k, err := NewKDEUnivariate(finite, nil, 1.0, 4.0, clipRange)
	if err != nil {
		logger.Error("NewKDEUnivariate failed", zap.Error(err))
		return nil, err
	}

	bw, err := k.Bandwidth()
	if err != nil {
		logger.Error("kde fit failed", zap.Error(err))
		return nil, err
	}

	calculatedQuantiles := map[string]*model.QuantileValue{}

	for _, value := range quantiles {
		quantile, err := k.Quantile(value)
		if err != nil {
			logger.Error("kde Quantile failed", zap.Error(err), zap.Float64("value", value))
			continue
		}
		quantile.Value = utils.FormatFloat(quantile.Value, 3)
		calculatedQuantiles[fmt.Sprintf("%v", value)] = quantile
	}

	return &model.KdeConfidence{
		Mean:           mean,
		StdDev:         stddev,
		Bandwidth:      bw,
		QuantileValues: calculatedQuantiles,
	}, nil
}
