package testcases

import "image"

var basicCases = []TestCase{
	{
		Name:   "single",
		Token:  "p10:10>s50:50>ff0000",
		Width:  100,
		Height: 100,
		Want:   []image.Rectangle{image.Rect(10, 10, 51, 51)},
	},
	{
		Name:   "two",
		Token:  "p10:10>s50:50>ff0000;p0:0>s20:20>00ff00",
		Width:  100,
		Height: 100,
		Want:   []image.Rectangle{image.Rect(10, 10, 51, 51), image.Rect(0, 0, 21, 21)},
	},
	{
		Name:   "non_square",
		Token:  "p25:10>s75:90>336699",
		Width:  120,
		Height: 48,
		Want:   []image.Rectangle{image.Rect(30, 4, 91, 44)},
	},
	{
		Name:   "odd_size",
		Token:  "p33:33>s66:66>abcdef",
		Width:  37,
		Height: 53,
		Want:   []image.Rectangle{image.Rect(12, 17, 25, 35)},
	},
}

var overlapCases = []TestCase{
	{
		Name:   "stack",
		Token:  "p0:0>s90:90>111111;p10:10>s80:80>222222;p20:20>s70:70>333333;p30:30>s60:60>444444",
		Width:  64,
		Height: 64,
		Want: []image.Rectangle{
			image.Rect(0, 0, 58, 58),
			image.Rect(6, 6, 52, 52),
			image.Rect(12, 12, 45, 45),
			image.Rect(19, 19, 39, 39),
		},
	},
	{
		Name:   "cross",
		Token:  "p40:0>s60:100>aa0000;p0:40>s100:60>0000aa",
		Width:  64,
		Height: 64,
		Want:   []image.Rectangle{image.Rect(25, 0, 39, 64), image.Rect(0, 25, 64, 39)},
	},
	{
		Name: "twelve",
		Token: "p5:5>s15:95>010203;p10:20>s30:40>040506;p50:50>s60:60>070809;p70:10>s95:30>0a0b0c;" +
			"p0:80>s100:85>0d0e0f;p45:0>s55:100>101112;p20:60>s40:90>131415;p80:40>s90:90>161718;" +
			"p2:2>s4:4>191a1b;p60:70>s75:75>1c1d1e;p30:30>s35:35>1f2021;p90:90>s99:99>222324",
		Width:  200,
		Height: 200,
		Want: []image.Rectangle{
			image.Rect(10, 10, 31, 191),
			image.Rect(20, 40, 61, 81),
			image.Rect(100, 100, 121, 121),
			image.Rect(140, 20, 191, 61),
			image.Rect(0, 160, 200, 171),
			image.Rect(90, 0, 111, 200),
			image.Rect(40, 120, 81, 181),
			image.Rect(160, 80, 181, 181),
			image.Rect(4, 4, 9, 9),
			image.Rect(120, 140, 151, 151),
			image.Rect(60, 60, 71, 71),
			image.Rect(180, 180, 199, 199),
		},
	},
}

var overflowCases = []TestCase{
	{
		Name:   "beyond_right",
		Token:  "p80:10>s100:50>ff00ff",
		Width:  50,
		Height: 50,
		Want:   []image.Rectangle{image.Rect(40, 5, 50, 26)},
	},
	{
		Name:   "huge_percent",
		Token:  "p50:50>s250:1000>00ffff",
		Width:  40,
		Height: 40,
		Want:   []image.Rectangle{image.Rect(20, 20, 40, 40)},
	},
	{
		Name:   "reversed_corners",
		Token:  "p90:80>s20:10>ffff00",
		Width:  60,
		Height: 60,
		Want:   []image.Rectangle{image.Rect(12, 6, 55, 49)},
	},
}

// degenerateCases contain boxes which are only one pixel wide or tall.
var degenerateCases = []TestCase{
	{
		Name:   "zero",
		Token:  "p0:0>s0:0>000000",
		Width:  16,
		Height: 16,
		Want:   []image.Rectangle{image.Rect(0, 0, 1, 1)},
	},
	{
		Name:   "line",
		Token:  "p10:50>s90:50>808080",
		Width:  32,
		Height: 32,
		Want:   []image.Rectangle{image.Rect(3, 16, 29, 17)},
	},
	{
		Name:   "favicon",
		Token:  "p1:99>s99:1>5a5a5a;p50:50>s50:50>ffffff",
		Width:  16,
		Height: 16,
		Want:   []image.Rectangle{image.Rect(0, 0, 16, 16), image.Rect(8, 8, 9, 9)},
	},
}
