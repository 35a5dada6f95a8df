package importer

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/latherlab/saponify/internal/model"
)

// ImportWebSnapshot converts a JSON dump saved by the legacy browser
// calculator (its localStorage session) into a recipe. The dump's shape
// drifted across versions, so fields are read by path with defaults
// instead of strict unmarshalling; anything missing keeps the engine
// defaults and anything unrecognized is ignored.
func ImportWebSnapshot(data []byte) (model.Recipe, error) {
	if !gjson.ValidBytes(data) {
		return model.Recipe{}, fmt.Errorf("legacy snapshot is not valid JSON")
	}
	doc := gjson.ParseBytes(data)

	r := model.NewRecipe()
	if name := doc.Get("name"); name.Exists() {
		r.Name = name.String()
	}

	oils := doc.Get("oils")
	if !oils.Exists() || !oils.IsArray() {
		return model.Recipe{}, fmt.Errorf("legacy snapshot has no oils array")
	}
	oils.ForEach(func(_, item gjson.Result) bool {
		oil := model.NewOilEntry(item.Get("name").String())
		oil.WeightG = item.Get("weight").Float()
		oil.Percent = item.Get("percent").Float()
		oil.SAPKoh = firstFloat(item, "sap", "sapKoh", "sap_koh")
		oil.IodineValue = firstFloat(item, "iodine", "iodineValue", "iodine_value")
		oil.INSValue = firstFloat(item, "ins", "insValue")
		if item.Get("lastEdited").String() == "percent" {
			oil.LastEdited = model.FieldPercent
		}
		if fatty := firstResult(item, "fatty", "fattyAcids", "fatty_acids"); fatty.Exists() {
			oil.FattyAcids = make(map[string]float64)
			fatty.ForEach(func(acid, pct gjson.Result) bool {
				oil.FattyAcids[strings.ToLower(acid.String())] = pct.Float()
				return true
			})
		}
		r.AddOil(oil)
		return true
	})

	r.Target.ExplicitG = firstFloat(doc, "totalWeight", "total_weight", "targetTotal")
	r.Target.MoldCapacityG = firstFloat(doc, "mold.capacity", "moldCapacity")
	r.Target.OilPercentOfMold = firstFloat(doc, "mold.oilPercent", "moldOilPercent")

	if lye := doc.Get("lye"); lye.Exists() {
		r.Lye.Type = parseLyeType(lye.Get("type").String())
		if v := lye.Get("purity"); v.Exists() {
			r.Lye.PurityPct = v.Float()
		}
		if v := lye.Get("superfat"); v.Exists() {
			r.Lye.SuperfatPct = v.Float()
		}
	}

	if water := doc.Get("water"); water.Exists() {
		switch strings.ToLower(water.Get("method").String()) {
		case "concentration", "lye-concentration":
			r.Water.Method = model.WaterConcentration
		case "ratio", "water-lye-ratio", "water:lye":
			r.Water.Method = model.WaterLyeRatio
		default:
			r.Water.Method = model.WaterPercentOfOils
		}
		if v := water.Get("percent"); v.Exists() {
			r.Water.PercentOfOils = v.Float()
		}
		if v := water.Get("concentration"); v.Exists() {
			r.Water.ConcentrationPct = v.Float()
		}
		if v := water.Get("ratio"); v.Exists() {
			r.Water.Ratio = v.Float()
		}
	}

	if adds := doc.Get("additives"); adds.Exists() {
		readAdditive(adds.Get("fragrance"), &r.Additives.Fragrance)
		readAdditive(adds.Get("lactate"), &r.Additives.Lactate)
		readAdditive(adds.Get("sugar"), &r.Additives.Sugar)
		readAdditive(adds.Get("salt"), &r.Additives.Salt)
		readAdditive(adds.Get("citric"), &r.Additives.Citric)
	}

	return r, nil
}

// ImportWebSnapshotFile reads and converts a legacy dump from disk.
func ImportWebSnapshotFile(path string) (model.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Recipe{}, fmt.Errorf("read legacy snapshot: %w", err)
	}
	return ImportWebSnapshot(data)
}

func readAdditive(item gjson.Result, spec *model.AdditiveSpec) {
	if !item.Exists() {
		return
	}
	spec.Percent = item.Get("percent").Float()
	spec.WeightG = item.Get("weight").Float()
	if item.Get("lastEdited").String() == "weight" || (spec.WeightG > 0 && spec.Percent == 0) {
		spec.LastEdited = model.FieldWeight
	} else {
		spec.LastEdited = model.FieldPercent
	}
}

func parseLyeType(s string) model.LyeType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "koh":
		return model.LyeKOH
	case "koh90", "koh 90", "koh 90%", "koh@90":
		return model.LyeKOH90
	default:
		return model.LyeNaOH
	}
}

// firstFloat returns the first existing path's float value, or 0.
func firstFloat(doc gjson.Result, paths ...string) float64 {
	for _, p := range paths {
		if v := doc.Get(p); v.Exists() {
			return v.Float()
		}
	}
	return 0
}

// firstResult returns the first existing path's result.
func firstResult(doc gjson.Result, paths ...string) gjson.Result {
	for _, p := range paths {
		if v := doc.Get(p); v.Exists() {
			return v
		}
	}
	return gjson.Result{}
}
