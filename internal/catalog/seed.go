package catalog

import "github.com/latherlab/saponify/internal/model"

// builtinIngredients is the catalog shipped with the application.
// SAP values are mg KOH per gram of fat; fatty-acid percentages are
// typical published figures for each oil, rounded. These are reference
// defaults a user can override by upserting their own records.
var builtinIngredients = []Ingredient{
	{
		Name: "Olive Oil", Category: "liquid oil", DefaultUnit: model.UnitGram,
		SAPKoh: 190, IodineValue: 80,
		FattyAcids: map[string]float64{
			"palmitic": 11, "stearic": 3, "oleic": 72, "linoleic": 10, "linolenic": 1,
		},
	},
	{
		Name: "Coconut Oil", Category: "hard oil", DefaultUnit: model.UnitGram,
		SAPKoh: 257, IodineValue: 10,
		FattyAcids: map[string]float64{
			"lauric": 48, "myristic": 19, "palmitic": 9, "stearic": 3, "oleic": 8, "linoleic": 2,
		},
	},
	{
		Name: "Palm Oil", Category: "hard oil", DefaultUnit: model.UnitGram,
		SAPKoh: 199, IodineValue: 53,
		FattyAcids: map[string]float64{
			"palmitic": 44, "stearic": 5, "oleic": 39, "linoleic": 10,
		},
	},
	{
		Name: "Castor Oil", Category: "liquid oil", DefaultUnit: model.UnitGram,
		SAPKoh: 180, IodineValue: 86,
		FattyAcids: map[string]float64{
			"ricinoleic": 90, "oleic": 4, "linoleic": 4,
		},
	},
	{
		Name: "Shea Butter", Category: "butter", DefaultUnit: model.UnitGram,
		SAPKoh: 180, IodineValue: 59,
		FattyAcids: map[string]float64{
			"palmitic": 5, "stearic": 40, "oleic": 48, "linoleic": 6,
		},
	},
	{
		Name: "Cocoa Butter", Category: "butter", DefaultUnit: model.UnitGram,
		SAPKoh: 194, IodineValue: 37,
		FattyAcids: map[string]float64{
			"palmitic": 28, "stearic": 33, "oleic": 35, "linoleic": 3,
		},
	},
	{
		Name: "Sweet Almond Oil", Category: "liquid oil", DefaultUnit: model.UnitGram,
		SAPKoh: 195, IodineValue: 99,
		FattyAcids: map[string]float64{
			"palmitic": 7, "stearic": 2, "oleic": 71, "linoleic": 18,
		},
	},
	{
		Name: "Sunflower Oil", Category: "liquid oil", DefaultUnit: model.UnitGram,
		SAPKoh: 189, IodineValue: 133,
		FattyAcids: map[string]float64{
			"palmitic": 7, "stearic": 4, "oleic": 16, "linoleic": 70,
		},
	},
	{
		Name: "Avocado Oil", Category: "liquid oil", DefaultUnit: model.UnitGram,
		SAPKoh: 187, IodineValue: 86,
		FattyAcids: map[string]float64{
			"palmitic": 20, "stearic": 2, "oleic": 58, "linoleic": 12, "linolenic": 1,
		},
	},
	{
		Name: "Lard", Category: "animal fat", DefaultUnit: model.UnitGram,
		SAPKoh: 194, IodineValue: 57,
		FattyAcids: map[string]float64{
			"myristic": 1, "palmitic": 28, "stearic": 13, "oleic": 46, "linoleic": 6,
		},
	},
	{
		Name: "Tallow", Category: "animal fat", DefaultUnit: model.UnitGram,
		SAPKoh: 197, IodineValue: 45,
		FattyAcids: map[string]float64{
			"myristic": 4, "palmitic": 28, "stearic": 22, "oleic": 36, "linoleic": 3,
		},
	},
	{
		Name: "Jojoba Oil", Category: "liquid wax", DefaultUnit: model.UnitGram,
		SAPKoh: 92, IodineValue: 82,
		FattyAcids: map[string]float64{
			"oleic": 12, "palmitic": 1,
		},
	},
	{
		Name: "Rice Bran Oil", Category: "liquid oil", DefaultUnit: model.UnitGram,
		SAPKoh: 187, IodineValue: 100,
		FattyAcids: map[string]float64{
			"palmitic": 22, "stearic": 3, "oleic": 38, "linoleic": 34, "linolenic": 2,
		},
	},
	{
		Name: "Hemp Seed Oil", Category: "liquid oil", DefaultUnit: model.UnitGram,
		SAPKoh: 192, IodineValue: 165,
		FattyAcids: map[string]float64{
			"palmitic": 6, "stearic": 2, "oleic": 12, "linoleic": 57, "linolenic": 21,
		},
	},
	{
		Name: "Canola Oil", Category: "liquid oil", DefaultUnit: model.UnitGram,
		SAPKoh: 186, IodineValue: 110,
		FattyAcids: map[string]float64{
			"palmitic": 4, "stearic": 2, "oleic": 61, "linoleic": 21, "linolenic": 9,
		},
	},
	{
		Name: "Beeswax", Category: "wax", DefaultUnit: model.UnitOunce,
		SAPKoh: 94, IodineValue: 10,
	},
	{
		Name: "Stearic Acid", Category: "fatty acid", DefaultUnit: model.UnitOunce,
		SAPKoh: 198, IodineValue: 2,
		FattyAcids: map[string]float64{
			"stearic": 95, "palmitic": 5,
		},
	},
}
