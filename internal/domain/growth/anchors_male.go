package growth

// WHO Child Growth Standards LMS anchors, transcribed mechanically.
// Age-indexed tables carry one anchor per month (months 0-61); the
// weight-for-height table carries one anchor per whole centimetre
// (45-120 cm). Daily and 0.1 cm rows are interpolated at build time
// by newReferenceTable.

var weightForAgeAnchorsMale = [62]lms{
	{0.3487, 3.3464, 0.14602},
	{0.2297, 4.4709, 0.13395},
	{0.1970, 5.5675, 0.12385},
	{0.1738, 6.3762, 0.11727},
	{0.1553, 7.0023, 0.11316},
	{0.1395, 7.5105, 0.11080},
	{0.1257, 7.9340, 0.10958},
	{0.1149, 8.2745, 0.10930},
	{0.1040, 8.6151, 0.10902},
	{0.0946, 8.8900, 0.10933},
	{0.0853, 9.1649, 0.10964},
	{0.0770, 9.4064, 0.11023},
	{0.0687, 9.6479, 0.11083},
	{0.0613, 9.8689, 0.11161},
	{0.0539, 10.0898, 0.11238},
	{0.0465, 10.3108, 0.11316},
	{0.0399, 10.5200, 0.11399},
	{0.0332, 10.7293, 0.11482},
	{0.0266, 10.9385, 0.11565},
	{0.0205, 11.1419, 0.11646},
	{0.0145, 11.3452, 0.11728},
	{0.0084, 11.5486, 0.11809},
	{0.0028, 11.7496, 0.11885},
	{-0.0027, 11.9505, 0.11962},
	{-0.0083, 12.1515, 0.12038},
	{-0.0133, 12.3476, 0.12106},
	{-0.0183, 12.5436, 0.12175},
	{-0.0232, 12.7397, 0.12243},
	{-0.0282, 12.9357, 0.12311},
	{-0.0332, 13.1318, 0.12380},
	{-0.0382, 13.3278, 0.12448},
	{-0.0425, 13.4970, 0.12506},
	{-0.0468, 13.6662, 0.12565},
	{-0.0512, 13.8354, 0.12623},
	{-0.0555, 14.0045, 0.12681},
	{-0.0598, 14.1737, 0.12740},
	{-0.0641, 14.3429, 0.12798},
	{-0.0679, 14.5019, 0.12846},
	{-0.0717, 14.6609, 0.12895},
	{-0.0755, 14.8200, 0.12944},
	{-0.0792, 14.9790, 0.12992},
	{-0.0830, 15.1380, 0.13040},
	{-0.0868, 15.2970, 0.13089},
	{-0.0902, 15.4723, 0.13129},
	{-0.0936, 15.6476, 0.13168},
	{-0.0970, 15.8230, 0.13208},
	{-0.1003, 15.9983, 0.13248},
	{-0.1037, 16.1736, 0.13287},
	{-0.1071, 16.3489, 0.13327},
	{-0.1101, 16.5124, 0.13359},
	{-0.1132, 16.6759, 0.13391},
	{-0.1163, 16.8394, 0.13422},
	{-0.1193, 17.0030, 0.13454},
	{-0.1224, 17.1665, 0.13486},
	{-0.1254, 17.3300, 0.13518},
	{-0.1282, 17.4978, 0.13543},
	{-0.1310, 17.6655, 0.13569},
	{-0.1338, 17.8333, 0.13594},
	{-0.1365, 18.0011, 0.13619},
	{-0.1393, 18.1688, 0.13645},
	{-0.1421, 18.3366, 0.13670},
	{-0.1449, 18.5044, 0.13695},
}

var heightForAgeAnchorsMale = [62]lms{
	{1.0000, 49.8842, 0.03795},
	{1.0000, 54.7244, 0.03557},
	{1.0000, 58.4249, 0.03424},
	{1.0000, 61.4292, 0.03328},
	{1.0000, 63.8860, 0.03257},
	{1.0000, 65.9026, 0.03204},
	{1.0000, 67.6236, 0.03165},
	{1.0000, 69.1115, 0.03139},
	{1.0000, 70.5994, 0.03114},
	{1.0000, 71.9403, 0.03104},
	{1.0000, 73.2812, 0.03093},
	{1.0000, 74.5150, 0.03098},
	{1.0000, 75.7488, 0.03103},
	{1.0000, 76.8811, 0.03117},
	{1.0000, 78.0135, 0.03130},
	{1.0000, 79.1458, 0.03144},
	{1.0000, 80.1834, 0.03164},
	{1.0000, 81.2211, 0.03185},
	{1.0000, 82.2587, 0.03205},
	{1.0000, 83.2174, 0.03228},
	{1.0000, 84.1761, 0.03251},
	{1.0000, 85.1348, 0.03274},
	{1.0000, 86.0286, 0.03298},
	{1.0000, 86.9223, 0.03321},
	{1.0000, 87.8161, 0.03345},
	{1.0000, 88.5022, 0.03368},
	{1.0000, 89.1883, 0.03391},
	{1.0000, 89.8744, 0.03415},
	{1.0000, 90.5605, 0.03438},
	{1.0000, 91.2466, 0.03461},
	{1.0000, 91.9327, 0.03484},
	{1.0000, 92.6245, 0.03506},
	{1.0000, 93.3163, 0.03527},
	{1.0000, 94.0081, 0.03549},
	{1.0000, 94.6999, 0.03571},
	{1.0000, 95.3917, 0.03592},
	{1.0000, 96.0835, 0.03614},
	{1.0000, 96.7093, 0.03633},
	{1.0000, 97.3351, 0.03652},
	{1.0000, 97.9609, 0.03671},
	{1.0000, 98.5867, 0.03689},
	{1.0000, 99.2125, 0.03708},
	{1.0000, 99.8383, 0.03727},
	{1.0000, 100.4198, 0.03743},
	{1.0000, 101.0013, 0.03760},
	{1.0000, 101.5828, 0.03776},
	{1.0000, 102.1643, 0.03792},
	{1.0000, 102.7458, 0.03809},
	{1.0000, 103.3273, 0.03825},
	{1.0000, 103.8781, 0.03839},
	{1.0000, 104.4289, 0.03853},
	{1.0000, 104.9796, 0.03867},
	{1.0000, 105.5304, 0.03881},
	{1.0000, 106.0812, 0.03895},
	{1.0000, 106.6320, 0.03909},
	{1.0000, 107.1543, 0.03921},
	{1.0000, 107.6765, 0.03933},
	{1.0000, 108.1988, 0.03945},
	{1.0000, 108.7210, 0.03956},
	{1.0000, 109.2433, 0.03968},
	{1.0000, 109.7655, 0.03980},
	{1.0000, 110.2878, 0.03992},
}

var weightForHeightAnchorsMale = [76]lms{
	{-0.3521, 2.4410, 0.09182},
	{-0.3521, 2.6262, 0.09090},
	{-0.3521, 2.8114, 0.08998},
	{-0.3521, 2.9966, 0.08906},
	{-0.3521, 3.1818, 0.08814},
	{-0.3521, 3.3670, 0.08722},
	{-0.3521, 3.5906, 0.08629},
	{-0.3521, 3.8142, 0.08537},
	{-0.3521, 4.0378, 0.08445},
	{-0.3521, 4.2614, 0.08353},
	{-0.3521, 4.4850, 0.08261},
	{-0.3521, 4.7806, 0.08222},
	{-0.3521, 5.0762, 0.08184},
	{-0.3521, 5.3718, 0.08145},
	{-0.3521, 5.6674, 0.08106},
	{-0.3521, 5.9630, 0.08067},
	{-0.3521, 6.2570, 0.08029},
	{-0.3521, 6.5510, 0.07990},
	{-0.3521, 6.8450, 0.07951},
	{-0.3521, 7.1390, 0.07913},
	{-0.3521, 7.4330, 0.07874},
	{-0.3521, 7.6616, 0.07870},
	{-0.3521, 7.8902, 0.07865},
	{-0.3521, 8.1188, 0.07861},
	{-0.3521, 8.3474, 0.07856},
	{-0.3521, 8.5760, 0.07852},
	{-0.3521, 8.7708, 0.07847},
	{-0.3521, 8.9656, 0.07842},
	{-0.3521, 9.1604, 0.07838},
	{-0.3521, 9.3552, 0.07834},
	{-0.3521, 9.5500, 0.07829},
	{-0.3521, 9.7600, 0.07841},
	{-0.3521, 9.9700, 0.07852},
	{-0.3521, 10.1800, 0.07863},
	{-0.3521, 10.3900, 0.07875},
	{-0.3521, 10.6000, 0.07886},
	{-0.3521, 10.8200, 0.07898},
	{-0.3521, 11.0400, 0.07909},
	{-0.3521, 11.2600, 0.07921},
	{-0.3521, 11.4800, 0.07932},
	{-0.3521, 11.7000, 0.07944},
	{-0.3521, 11.9400, 0.07962},
	{-0.3521, 12.1800, 0.07980},
	{-0.3521, 12.4200, 0.07998},
	{-0.3521, 12.6600, 0.08016},
	{-0.3521, 12.9000, 0.08034},
	{-0.3521, 13.1400, 0.08052},
	{-0.3521, 13.3800, 0.08070},
	{-0.3521, 13.6200, 0.08088},
	{-0.3521, 13.8600, 0.08106},
	{-0.3521, 14.1000, 0.08124},
	{-0.3521, 14.3600, 0.08144},
	{-0.3521, 14.6200, 0.08164},
	{-0.3521, 14.8800, 0.08184},
	{-0.3521, 15.1400, 0.08204},
	{-0.3521, 15.4000, 0.08224},
	{-0.3521, 15.6800, 0.08243},
	{-0.3521, 15.9600, 0.08263},
	{-0.3521, 16.2400, 0.08283},
	{-0.3521, 16.5200, 0.08303},
	{-0.3521, 16.8000, 0.08323},
	{-0.3521, 17.1200, 0.08347},
	{-0.3521, 17.4400, 0.08371},
	{-0.3521, 17.7600, 0.08395},
	{-0.3521, 18.0800, 0.08419},
	{-0.3521, 18.4000, 0.08443},
	{-0.3521, 18.7600, 0.08467},
	{-0.3521, 19.1200, 0.08491},
	{-0.3521, 19.4800, 0.08515},
	{-0.3521, 19.8400, 0.08539},
	{-0.3521, 20.2000, 0.08563},
	{-0.3521, 20.6200, 0.08595},
	{-0.3521, 21.0400, 0.08627},
	{-0.3521, 21.4600, 0.08658},
	{-0.3521, 21.8800, 0.08690},
	{-0.3521, 22.3000, 0.08722},
}
