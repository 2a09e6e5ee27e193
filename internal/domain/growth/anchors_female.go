package growth

// WHO Child Growth Standards LMS anchors, transcribed mechanically.
// Age-indexed tables carry one anchor per month (months 0-61); the
// weight-for-height table carries one anchor per whole centimetre
// (45-120 cm). Daily and 0.1 cm rows are interpolated at build time
// by newReferenceTable.

var weightForAgeAnchorsFemale = [62]lms{
	{0.3809, 3.2322, 0.14171},
	{0.1714, 4.1873, 0.13724},
	{0.0962, 5.1282, 0.13000},
	{0.0402, 5.8458, 0.12619},
	{-0.0050, 6.4237, 0.12402},
	{-0.0430, 6.8985, 0.12274},
	{-0.0756, 7.2970, 0.12204},
	{-0.1024, 7.6137, 0.12191},
	{-0.1293, 7.9304, 0.12178},
	{-0.1508, 8.2011, 0.12210},
	{-0.1724, 8.4718, 0.12242},
	{-0.1901, 8.7099, 0.12298},
	{-0.2078, 8.9481, 0.12354},
	{-0.2221, 9.1657, 0.12423},
	{-0.2365, 9.3832, 0.12493},
	{-0.2508, 9.6008, 0.12562},
	{-0.2626, 9.8110, 0.12635},
	{-0.2745, 10.0213, 0.12708},
	{-0.2863, 10.2315, 0.12781},
	{-0.2962, 10.4388, 0.12850},
	{-0.3062, 10.6461, 0.12920},
	{-0.3161, 10.8534, 0.12989},
	{-0.3246, 11.0614, 0.13051},
	{-0.3330, 11.2695, 0.13113},
	{-0.3415, 11.4775, 0.13175},
	{-0.3485, 11.6795, 0.13230},
	{-0.3555, 11.8814, 0.13285},
	{-0.3625, 12.0834, 0.13339},
	{-0.3694, 12.2854, 0.13394},
	{-0.3764, 12.4873, 0.13449},
	{-0.3834, 12.6893, 0.13504},
	{-0.3891, 12.8922, 0.13549},
	{-0.3947, 13.0951, 0.13593},
	{-0.4003, 13.2980, 0.13638},
	{-0.4060, 13.5008, 0.13683},
	{-0.4117, 13.7037, 0.13727},
	{-0.4173, 13.9066, 0.13772},
	{-0.4222, 14.1026, 0.13811},
	{-0.4271, 14.2987, 0.13850},
	{-0.4320, 14.4947, 0.13889},
	{-0.4370, 14.6907, 0.13929},
	{-0.4419, 14.8868, 0.13968},
	{-0.4468, 15.0828, 0.14007},
	{-0.4512, 15.2473, 0.14043},
	{-0.4557, 15.4118, 0.14079},
	{-0.4601, 15.5763, 0.14115},
	{-0.4645, 15.7407, 0.14151},
	{-0.4690, 15.9052, 0.14187},
	{-0.4734, 16.0697, 0.14223},
	{-0.4775, 16.2345, 0.14258},
	{-0.4816, 16.3994, 0.14292},
	{-0.4858, 16.5642, 0.14327},
	{-0.4899, 16.7290, 0.14361},
	{-0.4940, 16.8939, 0.14395},
	{-0.4981, 17.0587, 0.14430},
	{-0.5020, 17.2217, 0.14464},
	{-0.5059, 17.3847, 0.14497},
	{-0.5097, 17.5477, 0.14531},
	{-0.5136, 17.7107, 0.14565},
	{-0.5175, 17.8737, 0.14598},
	{-0.5214, 18.0367, 0.14632},
	{-0.5253, 18.1997, 0.14666},
}

var heightForAgeAnchorsFemale = [62]lms{
	{1.0000, 49.1477, 0.03790},
	{1.0000, 53.6872, 0.03640},
	{1.0000, 57.0673, 0.03568},
	{1.0000, 59.8029, 0.03520},
	{1.0000, 62.0899, 0.03486},
	{1.0000, 64.0301, 0.03463},
	{1.0000, 65.7311, 0.03448},
	{1.0000, 67.2404, 0.03445},
	{1.0000, 68.7498, 0.03441},
	{1.0000, 70.1158, 0.03449},
	{1.0000, 71.4818, 0.03456},
	{1.0000, 72.7484, 0.03467},
	{1.0000, 74.0150, 0.03479},
	{1.0000, 75.1800, 0.03500},
	{1.0000, 76.3449, 0.03521},
	{1.0000, 77.5099, 0.03542},
	{1.0000, 78.5759, 0.03564},
	{1.0000, 79.6419, 0.03586},
	{1.0000, 80.7079, 0.03608},
	{1.0000, 81.6986, 0.03629},
	{1.0000, 82.6893, 0.03650},
	{1.0000, 83.6800, 0.03671},
	{1.0000, 84.5918, 0.03692},
	{1.0000, 85.5035, 0.03713},
	{1.0000, 86.4153, 0.03734},
	{1.0000, 87.1294, 0.03751},
	{1.0000, 87.8435, 0.03769},
	{1.0000, 88.5576, 0.03786},
	{1.0000, 89.2718, 0.03803},
	{1.0000, 89.9859, 0.03821},
	{1.0000, 90.7000, 0.03838},
	{1.0000, 91.4253, 0.03851},
	{1.0000, 92.1505, 0.03864},
	{1.0000, 92.8758, 0.03877},
	{1.0000, 93.6010, 0.03890},
	{1.0000, 94.3263, 0.03903},
	{1.0000, 95.0515, 0.03916},
	{1.0000, 95.6927, 0.03928},
	{1.0000, 96.3339, 0.03940},
	{1.0000, 96.9751, 0.03952},
	{1.0000, 97.6163, 0.03964},
	{1.0000, 98.2575, 0.03976},
	{1.0000, 98.8987, 0.03988},
	{1.0000, 99.5323, 0.03998},
	{1.0000, 100.1658, 0.04009},
	{1.0000, 100.7994, 0.04019},
	{1.0000, 101.4329, 0.04029},
	{1.0000, 102.0665, 0.04040},
	{1.0000, 102.7000, 0.04050},
	{1.0000, 103.2833, 0.04058},
	{1.0000, 103.8667, 0.04067},
	{1.0000, 104.4500, 0.04075},
	{1.0000, 105.0333, 0.04083},
	{1.0000, 105.6167, 0.04092},
	{1.0000, 106.2000, 0.04100},
	{1.0000, 106.7333, 0.04107},
	{1.0000, 107.2667, 0.04114},
	{1.0000, 107.8000, 0.04122},
	{1.0000, 108.3333, 0.04129},
	{1.0000, 108.8667, 0.04136},
	{1.0000, 109.4000, 0.04143},
	{1.0000, 109.9333, 0.04150},
}

var weightForHeightAnchorsFemale = [76]lms{
	{-0.3833, 2.4610, 0.09471},
	{-0.3833, 2.6362, 0.09378},
	{-0.3833, 2.8114, 0.09284},
	{-0.3833, 2.9866, 0.09191},
	{-0.3833, 3.1618, 0.09098},
	{-0.3833, 3.3370, 0.09005},
	{-0.3833, 3.5610, 0.08911},
	{-0.3833, 3.7850, 0.08818},
	{-0.3833, 4.0090, 0.08725},
	{-0.3833, 4.2330, 0.08631},
	{-0.3833, 4.4570, 0.08538},
	{-0.3833, 4.7460, 0.08498},
	{-0.3833, 5.0350, 0.08458},
	{-0.3833, 5.3240, 0.08417},
	{-0.3833, 5.6130, 0.08377},
	{-0.3833, 5.9020, 0.08337},
	{-0.3833, 6.1696, 0.08297},
	{-0.3833, 6.4372, 0.08257},
	{-0.3833, 6.7048, 0.08216},
	{-0.3833, 6.9724, 0.08176},
	{-0.3833, 7.2400, 0.08136},
	{-0.3833, 7.4646, 0.08133},
	{-0.3833, 7.6892, 0.08131},
	{-0.3833, 7.9138, 0.08128},
	{-0.3833, 8.1384, 0.08126},
	{-0.3833, 8.3630, 0.08123},
	{-0.3833, 8.5664, 0.08120},
	{-0.3833, 8.7698, 0.08118},
	{-0.3833, 8.9732, 0.08115},
	{-0.3833, 9.1766, 0.08113},
	{-0.3833, 9.3800, 0.08110},
	{-0.3833, 9.5880, 0.08128},
	{-0.3833, 9.7960, 0.08145},
	{-0.3833, 10.0040, 0.08163},
	{-0.3833, 10.2120, 0.08180},
	{-0.3833, 10.4200, 0.08197},
	{-0.3833, 10.6460, 0.08215},
	{-0.3833, 10.8720, 0.08232},
	{-0.3833, 11.0980, 0.08250},
	{-0.3833, 11.3240, 0.08267},
	{-0.3833, 11.5500, 0.08285},
	{-0.3833, 11.7960, 0.08308},
	{-0.3833, 12.0420, 0.08332},
	{-0.3833, 12.2880, 0.08355},
	{-0.3833, 12.5340, 0.08379},
	{-0.3833, 12.7800, 0.08402},
	{-0.3833, 13.0240, 0.08426},
	{-0.3833, 13.2680, 0.08450},
	{-0.3833, 13.5120, 0.08473},
	{-0.3833, 13.7560, 0.08496},
	{-0.3833, 14.0000, 0.08520},
	{-0.3833, 14.2700, 0.08547},
	{-0.3833, 14.5400, 0.08575},
	{-0.3833, 14.8100, 0.08602},
	{-0.3833, 15.0800, 0.08629},
	{-0.3833, 15.3500, 0.08657},
	{-0.3833, 15.6500, 0.08684},
	{-0.3833, 15.9500, 0.08711},
	{-0.3833, 16.2500, 0.08738},
	{-0.3833, 16.5500, 0.08766},
	{-0.3833, 16.8500, 0.08793},
	{-0.3833, 17.1900, 0.08824},
	{-0.3833, 17.5300, 0.08856},
	{-0.3833, 17.8700, 0.08887},
	{-0.3833, 18.2100, 0.08919},
	{-0.3833, 18.5500, 0.08951},
	{-0.3833, 18.9400, 0.08982},
	{-0.3833, 19.3300, 0.09013},
	{-0.3833, 19.7200, 0.09045},
	{-0.3833, 20.1100, 0.09076},
	{-0.3833, 20.5000, 0.09108},
	{-0.3833, 20.9500, 0.09143},
	{-0.3833, 21.4000, 0.09178},
	{-0.3833, 21.8500, 0.09214},
	{-0.3833, 22.3000, 0.09249},
	{-0.3833, 22.7500, 0.09284},
}
