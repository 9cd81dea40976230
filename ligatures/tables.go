package ligatures

var sentenceLigatures = []Ligature{
	{"ARABIC LIGATURE BISMILLAH AR-RAHMAN AR-RAHEEM", []string{"\u0628\u0633\u0645\u0020\u0627\u0644\u0644\u0647\u0020\u0627\u0644\u0631\u062D\u0645\u0646\u0020\u0627\u0644\u0631\u062D\u064A\u0645"}, [4]rune{0xFDFD, 0, 0, 0}},
	{"ARABIC LIGATURE JALLAJALALOUHOU", []string{"\u062C\u0644\u0020\u062C\u0644\u0627\u0644\u0647"}, [4]rune{0xFDFB, 0, 0, 0}},
	{"ARABIC LIGATURE SALLALLAHOU ALAYHE WASALLAM", []string{"\u0635\u0644\u0649\u0020\u0627\u0644\u0644\u0647\u0020\u0639\u0644\u064A\u0647\u0020\u0648\u0633\u0644\u0645"}, [4]rune{0xFDFA, 0, 0, 0}},
}

var wordLigatures = []Ligature{
	{"ARABIC LIGATURE ALLAH", []string{"\u0627\u0644\u0644\u0647"}, [4]rune{0xFDF2, 0, 0, 0}},
	{"ARABIC LIGATURE AKBAR", []string{"\u0623\u0643\u0628\u0631"}, [4]rune{0xFDF3, 0, 0, 0}},
	{"ARABIC LIGATURE ALAYHE", []string{"\u0639\u0644\u064A\u0647"}, [4]rune{0xFDF7, 0, 0, 0}},
	{"ARABIC LIGATURE MOHAMMAD", []string{"\u0645\u062D\u0645\u062F"}, [4]rune{0xFDF4, 0, 0, 0}},
	{"ARABIC LIGATURE RASOUL", []string{"\u0631\u0633\u0648\u0644"}, [4]rune{0xFDF6, 0, 0, 0}},
	{"ARABIC LIGATURE SALAM", []string{"\u0635\u0644\u0639\u0645"}, [4]rune{0xFDF5, 0, 0, 0}},
	{"ARABIC LIGATURE SALLA", []string{"\u0635\u0644\u0649"}, [4]rune{0xFDF9, 0, 0, 0}},
	{"ARABIC LIGATURE WASALLAM", []string{"\u0648\u0633\u0644\u0645"}, [4]rune{0xFDF8, 0, 0, 0}},
	{"RIAL SIGN", []string{"\u0631\u06CC\u0627\u0644", "\u0631\u064A\u0627\u0644"}, [4]rune{0xFDFC, 0, 0, 0}},
}

var letterLigatures = []Ligature{
	{"ARABIC LIGATURE AIN WITH ALEF MAKSURA", []string{"\u0639\u0649"}, [4]rune{0xFCF7, 0, 0, 0xFD13}},
	{"ARABIC LIGATURE AIN WITH JEEM", []string{"\u0639\u062C"}, [4]rune{0xFC29, 0xFCBA, 0, 0}},
	{"ARABIC LIGATURE AIN WITH JEEM WITH MEEM", []string{"\u0639\u062C\u0645"}, [4]rune{0, 0xFDC4, 0, 0xFD75}},
	{"ARABIC LIGATURE AIN WITH MEEM", []string{"\u0639\u0645"}, [4]rune{0xFC2A, 0xFCBB, 0, 0}},
	{"ARABIC LIGATURE AIN WITH MEEM WITH ALEF MAKSURA", []string{"\u0639\u0645\u0649"}, [4]rune{0, 0, 0, 0xFD78}},
	{"ARABIC LIGATURE AIN WITH MEEM WITH MEEM", []string{"\u0639\u0645\u0645"}, [4]rune{0, 0xFD77, 0, 0xFD76}},
	{"ARABIC LIGATURE AIN WITH MEEM WITH YEH", []string{"\u0639\u0645\u064A"}, [4]rune{0, 0, 0, 0xFDB6}},
	{"ARABIC LIGATURE AIN WITH YEH", []string{"\u0639\u064A"}, [4]rune{0xFCF8, 0, 0, 0xFD14}},
	{"ARABIC LIGATURE ALEF MAKSURA WITH SUPERSCRIPT ALEF", []string{"\u0649\u0670"}, [4]rune{0xFC5D, 0, 0, 0xFC90}},
	{"ARABIC LIGATURE ALEF WITH FATHATAN", []string{"\u0627\u064B"}, [4]rune{0xFD3D, 0, 0, 0xFD3C}},
	{"ARABIC LIGATURE BEH WITH ALEF MAKSURA", []string{"\u0628\u0649"}, [4]rune{0xFC09, 0, 0, 0xFC6E}},
	{"ARABIC LIGATURE BEH WITH HAH", []string{"\u0628\u062D"}, [4]rune{0xFC06, 0xFC9D, 0, 0}},
	{"ARABIC LIGATURE BEH WITH HAH WITH YEH", []string{"\u0628\u062D\u064A"}, [4]rune{0, 0, 0, 0xFDC2}},
	{"ARABIC LIGATURE BEH WITH HEH", []string{"\u0628\u0647"}, [4]rune{0, 0xFCA0, 0xFCE2, 0}},
	{"ARABIC LIGATURE BEH WITH JEEM", []string{"\u0628\u062C"}, [4]rune{0xFC05, 0xFC9C, 0, 0}},
	{"ARABIC LIGATURE BEH WITH KHAH", []string{"\u0628\u062E"}, [4]rune{0xFC07, 0xFC9E, 0, 0}},
	{"ARABIC LIGATURE BEH WITH KHAH WITH YEH", []string{"\u0628\u062E\u064A"}, [4]rune{0, 0, 0, 0xFD9E}},
	{"ARABIC LIGATURE BEH WITH MEEM", []string{"\u0628\u0645"}, [4]rune{0xFC08, 0xFC9F, 0xFCE1, 0xFC6C}},
	{"ARABIC LIGATURE BEH WITH NOON", []string{"\u0628\u0646"}, [4]rune{0, 0, 0, 0xFC6D}},
	{"ARABIC LIGATURE BEH WITH REH", []string{"\u0628\u0631"}, [4]rune{0, 0, 0, 0xFC6A}},
	{"ARABIC LIGATURE BEH WITH YEH", []string{"\u0628\u064A"}, [4]rune{0xFC0A, 0, 0, 0xFC6F}},
	{"ARABIC LIGATURE BEH WITH ZAIN", []string{"\u0628\u0632"}, [4]rune{0, 0, 0, 0xFC6B}},
	{"ARABIC LIGATURE DAD WITH ALEF MAKSURA", []string{"\u0636\u0649"}, [4]rune{0xFD07, 0, 0, 0xFD23}},
	{"ARABIC LIGATURE DAD WITH HAH", []string{"\u0636\u062D"}, [4]rune{0xFC23, 0xFCB5, 0, 0}},
	{"ARABIC LIGATURE DAD WITH HAH WITH ALEF MAKSURA", []string{"\u0636\u062D\u0649"}, [4]rune{0, 0, 0, 0xFD6E}},
	{"ARABIC LIGATURE DAD WITH HAH WITH YEH", []string{"\u0636\u062D\u064A"}, [4]rune{0, 0, 0, 0xFDAB}},
	{"ARABIC LIGATURE DAD WITH JEEM", []string{"\u0636\u062C"}, [4]rune{0xFC22, 0xFCB4, 0, 0}},
	{"ARABIC LIGATURE DAD WITH KHAH", []string{"\u0636\u062E"}, [4]rune{0xFC24, 0xFCB6, 0, 0}},
	{"ARABIC LIGATURE DAD WITH KHAH WITH MEEM", []string{"\u0636\u062E\u0645"}, [4]rune{0, 0xFD70, 0, 0xFD6F}},
	{"ARABIC LIGATURE DAD WITH MEEM", []string{"\u0636\u0645"}, [4]rune{0xFC25, 0xFCB7, 0, 0}},
	{"ARABIC LIGATURE DAD WITH REH", []string{"\u0636\u0631"}, [4]rune{0xFD10, 0, 0, 0xFD2C}},
	{"ARABIC LIGATURE DAD WITH YEH", []string{"\u0636\u064A"}, [4]rune{0xFD08, 0, 0, 0xFD24}},
	{"ARABIC LIGATURE FEH WITH ALEF MAKSURA", []string{"\u0641\u0649"}, [4]rune{0xFC31, 0, 0, 0xFC7C}},
	{"ARABIC LIGATURE FEH WITH HAH", []string{"\u0641\u062D"}, [4]rune{0xFC2E, 0xFCBF, 0, 0}},
	{"ARABIC LIGATURE FEH WITH JEEM", []string{"\u0641\u062C"}, [4]rune{0xFC2D, 0xFCBE, 0, 0}},
	{"ARABIC LIGATURE FEH WITH KHAH", []string{"\u0641\u062E"}, [4]rune{0xFC2F, 0xFCC0, 0, 0}},
	{"ARABIC LIGATURE FEH WITH KHAH WITH MEEM", []string{"\u0641\u062E\u0645"}, [4]rune{0, 0xFD7D, 0, 0xFD7C}},
	{"ARABIC LIGATURE FEH WITH MEEM", []string{"\u0641\u0645"}, [4]rune{0xFC30, 0xFCC1, 0, 0}},
	{"ARABIC LIGATURE FEH WITH MEEM WITH YEH", []string{"\u0641\u0645\u064A"}, [4]rune{0, 0, 0, 0xFDC1}},
	{"ARABIC LIGATURE FEH WITH YEH", []string{"\u0641\u064A"}, [4]rune{0xFC32, 0, 0, 0xFC7D}},
	{"ARABIC LIGATURE GHAIN WITH ALEF MAKSURA", []string{"\u063A\u0649"}, [4]rune{0xFCF9, 0, 0, 0xFD15}},
	{"ARABIC LIGATURE GHAIN WITH JEEM", []string{"\u063A\u062C"}, [4]rune{0xFC2B, 0xFCBC, 0, 0}},
	{"ARABIC LIGATURE GHAIN WITH MEEM", []string{"\u063A\u0645"}, [4]rune{0xFC2C, 0xFCBD, 0, 0}},
	{"ARABIC LIGATURE GHAIN WITH MEEM WITH ALEF MAKSURA", []string{"\u063A\u0645\u0649"}, [4]rune{0, 0, 0, 0xFD7B}},
	{"ARABIC LIGATURE GHAIN WITH MEEM WITH MEEM", []string{"\u063A\u0645\u0645"}, [4]rune{0, 0, 0, 0xFD79}},
	{"ARABIC LIGATURE GHAIN WITH MEEM WITH YEH", []string{"\u063A\u0645\u064A"}, [4]rune{0, 0, 0, 0xFD7A}},
	{"ARABIC LIGATURE GHAIN WITH YEH", []string{"\u063A\u064A"}, [4]rune{0xFCFA, 0, 0, 0xFD16}},
	{"ARABIC LIGATURE HAH WITH ALEF MAKSURA", []string{"\u062D\u0649"}, [4]rune{0xFCFF, 0, 0, 0xFD1B}},
	{"ARABIC LIGATURE HAH WITH JEEM", []string{"\u062D\u062C"}, [4]rune{0xFC17, 0xFCA9, 0, 0}},
	{"ARABIC LIGATURE HAH WITH JEEM WITH YEH", []string{"\u062D\u062C\u064A"}, [4]rune{0, 0, 0, 0xFDBF}},
	{"ARABIC LIGATURE HAH WITH MEEM", []string{"\u062D\u0645"}, [4]rune{0xFC18, 0xFCAA, 0, 0}},
	{"ARABIC LIGATURE HAH WITH MEEM WITH ALEF MAKSURA", []string{"\u062D\u0645\u0649"}, [4]rune{0, 0, 0, 0xFD5B}},
	{"ARABIC LIGATURE HAH WITH MEEM WITH YEH", []string{"\u062D\u0645\u064A"}, [4]rune{0, 0, 0, 0xFD5A}},
	{"ARABIC LIGATURE HAH WITH YEH", []string{"\u062D\u064A"}, [4]rune{0xFD00, 0, 0, 0xFD1C}},
	{"ARABIC LIGATURE HEH WITH ALEF MAKSURA", []string{"\u0647\u0649"}, [4]rune{0xFC53, 0, 0, 0}},
	{"ARABIC LIGATURE HEH WITH JEEM", []string{"\u0647\u062C"}, [4]rune{0xFC51, 0xFCD7, 0, 0}},
	{"ARABIC LIGATURE HEH WITH MEEM", []string{"\u0647\u0645"}, [4]rune{0xFC52, 0xFCD8, 0, 0}},
	{"ARABIC LIGATURE HEH WITH MEEM WITH JEEM", []string{"\u0647\u0645\u062C"}, [4]rune{0, 0xFD93, 0, 0}},
	{"ARABIC LIGATURE HEH WITH MEEM WITH MEEM", []string{"\u0647\u0645\u0645"}, [4]rune{0, 0xFD94, 0, 0}},
	{"ARABIC LIGATURE HEH WITH SUPERSCRIPT ALEF", []string{"\u0647\u0670"}, [4]rune{0, 0xFCD9, 0, 0}},
	{"ARABIC LIGATURE HEH WITH YEH", []string{"\u0647\u064A"}, [4]rune{0xFC54, 0, 0, 0}},
	{"ARABIC LIGATURE JEEM WITH ALEF MAKSURA", []string{"\u062C\u0649"}, [4]rune{0xFD01, 0, 0, 0xFD1D}},
	{"ARABIC LIGATURE JEEM WITH HAH", []string{"\u062C\u062D"}, [4]rune{0xFC15, 0xFCA7, 0, 0}},
	{"ARABIC LIGATURE JEEM WITH HAH WITH ALEF MAKSURA", []string{"\u062C\u062D\u0649"}, [4]rune{0, 0, 0, 0xFDA6}},
	{"ARABIC LIGATURE JEEM WITH HAH WITH YEH", []string{"\u062C\u062D\u064A"}, [4]rune{0, 0, 0, 0xFDBE}},
	{"ARABIC LIGATURE JEEM WITH MEEM", []string{"\u062C\u0645"}, [4]rune{0xFC16, 0xFCA8, 0, 0}},
	{"ARABIC LIGATURE JEEM WITH MEEM WITH ALEF MAKSURA", []string{"\u062C\u0645\u0649"}, [4]rune{0, 0, 0, 0xFDA7}},
	{"ARABIC LIGATURE JEEM WITH MEEM WITH HAH", []string{"\u062C\u0645\u062D"}, [4]rune{0, 0xFD59, 0, 0xFD58}},
	{"ARABIC LIGATURE JEEM WITH MEEM WITH YEH", []string{"\u062C\u0645\u064A"}, [4]rune{0, 0, 0, 0xFDA5}},
	{"ARABIC LIGATURE JEEM WITH YEH", []string{"\u062C\u064A"}, [4]rune{0xFD02, 0, 0, 0xFD1E}},
	{"ARABIC LIGATURE KAF WITH ALEF", []string{"\u0643\u0627"}, [4]rune{0xFC37, 0, 0, 0xFC80}},
	{"ARABIC LIGATURE KAF WITH ALEF MAKSURA", []string{"\u0643\u0649"}, [4]rune{0xFC3D, 0, 0, 0xFC83}},
	{"ARABIC LIGATURE KAF WITH HAH", []string{"\u0643\u062D"}, [4]rune{0xFC39, 0xFCC5, 0, 0}},
	{"ARABIC LIGATURE KAF WITH JEEM", []string{"\u0643\u062C"}, [4]rune{0xFC38, 0xFCC4, 0, 0}},
	{"ARABIC LIGATURE KAF WITH KHAH", []string{"\u0643\u062E"}, [4]rune{0xFC3A, 0xFCC6, 0, 0}},
	{"ARABIC LIGATURE KAF WITH LAM", []string{"\u0643\u0644"}, [4]rune{0xFC3B, 0xFCC7, 0xFCEB, 0xFC81}},
	{"ARABIC LIGATURE KAF WITH MEEM", []string{"\u0643\u0645"}, [4]rune{0xFC3C, 0xFCC8, 0xFCEC, 0xFC82}},
	{"ARABIC LIGATURE KAF WITH MEEM WITH MEEM", []string{"\u0643\u0645\u0645"}, [4]rune{0, 0xFDC3, 0, 0xFDBB}},
	{"ARABIC LIGATURE KAF WITH MEEM WITH YEH", []string{"\u0643\u0645\u064A"}, [4]rune{0, 0, 0, 0xFDB7}},
	{"ARABIC LIGATURE KAF WITH YEH", []string{"\u0643\u064A"}, [4]rune{0xFC3E, 0, 0, 0xFC84}},
	{"ARABIC LIGATURE KHAH WITH ALEF MAKSURA", []string{"\u062E\u0649"}, [4]rune{0xFD03, 0, 0, 0xFD1F}},
	{"ARABIC LIGATURE KHAH WITH HAH", []string{"\u062E\u062D"}, [4]rune{0xFC1A, 0, 0, 0}},
	{"ARABIC LIGATURE KHAH WITH JEEM", []string{"\u062E\u062C"}, [4]rune{0xFC19, 0xFCAB, 0, 0}},
	{"ARABIC LIGATURE KHAH WITH MEEM", []string{"\u062E\u0645"}, [4]rune{0xFC1B, 0xFCAC, 0, 0}},
	{"ARABIC LIGATURE KHAH WITH YEH", []string{"\u062E\u064A"}, [4]rune{0xFD04, 0, 0, 0xFD20}},
	{"ARABIC LIGATURE LAM WITH ALEF", []string{"\u0644\u0627"}, [4]rune{0xFEFB, 0, 0, 0xFEFC}},
	{"ARABIC LIGATURE LAM WITH ALEF MAKSURA", []string{"\u0644\u0649"}, [4]rune{0xFC43, 0, 0, 0xFC86}},
	{"ARABIC LIGATURE LAM WITH ALEF WITH HAMZA ABOVE", []string{"\u0644\u0623"}, [4]rune{0xFEF7, 0, 0, 0xFEF8}},
	{"ARABIC LIGATURE LAM WITH ALEF WITH HAMZA BELOW", []string{"\u0644\u0625"}, [4]rune{0xFEF9, 0, 0, 0xFEFA}},
	{"ARABIC LIGATURE LAM WITH ALEF WITH MADDA ABOVE", []string{"\u0644\u0622"}, [4]rune{0xFEF5, 0, 0, 0xFEF6}},
	{"ARABIC LIGATURE LAM WITH HAH", []string{"\u0644\u062D"}, [4]rune{0xFC40, 0xFCCA, 0, 0}},
	{"ARABIC LIGATURE LAM WITH HAH WITH ALEF MAKSURA", []string{"\u0644\u062D\u0649"}, [4]rune{0, 0, 0, 0xFD82}},
	{"ARABIC LIGATURE LAM WITH HAH WITH MEEM", []string{"\u0644\u062D\u0645"}, [4]rune{0, 0xFDB5, 0, 0xFD80}},
	{"ARABIC LIGATURE LAM WITH HAH WITH YEH", []string{"\u0644\u062D\u064A"}, [4]rune{0, 0, 0, 0xFD81}},
	{"ARABIC LIGATURE LAM WITH HEH", []string{"\u0644\u0647"}, [4]rune{0, 0xFCCD, 0, 0}},
	{"ARABIC LIGATURE LAM WITH JEEM", []string{"\u0644\u062C"}, [4]rune{0xFC3F, 0xFCC9, 0, 0}},
	{"ARABIC LIGATURE LAM WITH JEEM WITH JEEM", []string{"\u0644\u062C\u062C"}, [4]rune{0, 0xFD83, 0, 0xFD84}},
	{"ARABIC LIGATURE LAM WITH JEEM WITH MEEM", []string{"\u0644\u062C\u0645"}, [4]rune{0, 0xFDBA, 0, 0xFDBC}},
	{"ARABIC LIGATURE LAM WITH JEEM WITH YEH", []string{"\u0644\u062C\u064A"}, [4]rune{0, 0, 0, 0xFDAC}},
	{"ARABIC LIGATURE LAM WITH KHAH", []string{"\u0644\u062E"}, [4]rune{0xFC41, 0xFCCB, 0, 0}},
	{"ARABIC LIGATURE LAM WITH KHAH WITH MEEM", []string{"\u0644\u062E\u0645"}, [4]rune{0, 0xFD86, 0, 0xFD85}},
	{"ARABIC LIGATURE LAM WITH MEEM", []string{"\u0644\u0645"}, [4]rune{0xFC42, 0xFCCC, 0xFCED, 0xFC85}},
	{"ARABIC LIGATURE LAM WITH MEEM WITH HAH", []string{"\u0644\u0645\u062D"}, [4]rune{0, 0xFD88, 0, 0xFD87}},
	{"ARABIC LIGATURE LAM WITH MEEM WITH YEH", []string{"\u0644\u0645\u064A"}, [4]rune{0, 0, 0, 0xFDAD}},
	{"ARABIC LIGATURE LAM WITH YEH", []string{"\u0644\u064A"}, [4]rune{0xFC44, 0, 0, 0xFC87}},
	{"ARABIC LIGATURE MEEM WITH ALEF", []string{"\u0645\u0627"}, [4]rune{0, 0, 0, 0xFC88}},
	{"ARABIC LIGATURE MEEM WITH ALEF MAKSURA", []string{"\u0645\u0649"}, [4]rune{0xFC49, 0, 0, 0}},
	{"ARABIC LIGATURE MEEM WITH HAH", []string{"\u0645\u062D"}, [4]rune{0xFC46, 0xFCCF, 0, 0}},
	{"ARABIC LIGATURE MEEM WITH HAH WITH JEEM", []string{"\u0645\u062D\u062C"}, [4]rune{0, 0xFD89, 0, 0}},
	{"ARABIC LIGATURE MEEM WITH HAH WITH MEEM", []string{"\u0645\u062D\u0645"}, [4]rune{0, 0xFD8A, 0, 0}},
	{"ARABIC LIGATURE MEEM WITH HAH WITH YEH", []string{"\u0645\u062D\u064A"}, [4]rune{0, 0, 0, 0xFD8B}},
	{"ARABIC LIGATURE MEEM WITH JEEM", []string{"\u0645\u062C"}, [4]rune{0xFC45, 0xFCCE, 0, 0}},
	{"ARABIC LIGATURE MEEM WITH JEEM WITH HAH", []string{"\u0645\u062C\u062D"}, [4]rune{0, 0xFD8C, 0, 0}},
	{"ARABIC LIGATURE MEEM WITH JEEM WITH KHAH", []string{"\u0645\u062C\u062E"}, [4]rune{0, 0xFD92, 0, 0}},
	{"ARABIC LIGATURE MEEM WITH JEEM WITH MEEM", []string{"\u0645\u062C\u0645"}, [4]rune{0, 0xFD8D, 0, 0}},
	{"ARABIC LIGATURE MEEM WITH JEEM WITH YEH", []string{"\u0645\u062C\u064A"}, [4]rune{0, 0, 0, 0xFDC0}},
	{"ARABIC LIGATURE MEEM WITH KHAH", []string{"\u0645\u062E"}, [4]rune{0xFC47, 0xFCD0, 0, 0}},
	{"ARABIC LIGATURE MEEM WITH KHAH WITH JEEM", []string{"\u0645\u062E\u062C"}, [4]rune{0, 0xFD8E, 0, 0}},
	{"ARABIC LIGATURE MEEM WITH KHAH WITH MEEM", []string{"\u0645\u062E\u0645"}, [4]rune{0, 0xFD8F, 0, 0}},
	{"ARABIC LIGATURE MEEM WITH KHAH WITH YEH", []string{"\u0645\u062E\u064A"}, [4]rune{0, 0, 0, 0xFDB9}},
	{"ARABIC LIGATURE MEEM WITH MEEM", []string{"\u0645\u0645"}, [4]rune{0xFC48, 0xFCD1, 0, 0xFC89}},
	{"ARABIC LIGATURE MEEM WITH MEEM WITH YEH", []string{"\u0645\u0645\u064A"}, [4]rune{0, 0, 0, 0xFDB1}},
	{"ARABIC LIGATURE MEEM WITH YEH", []string{"\u0645\u064A"}, [4]rune{0xFC4A, 0, 0, 0}},
	{"ARABIC LIGATURE NOON WITH ALEF MAKSURA", []string{"\u0646\u0649"}, [4]rune{0xFC4F, 0, 0, 0xFC8E}},
	{"ARABIC LIGATURE NOON WITH HAH", []string{"\u0646\u062D"}, [4]rune{0xFC4C, 0xFCD3, 0, 0}},
	{"ARABIC LIGATURE NOON WITH HAH WITH ALEF MAKSURA", []string{"\u0646\u062D\u0649"}, [4]rune{0, 0, 0, 0xFD96}},
	{"ARABIC LIGATURE NOON WITH HAH WITH MEEM", []string{"\u0646\u062D\u0645"}, [4]rune{0, 0xFD95, 0, 0}},
	{"ARABIC LIGATURE NOON WITH HAH WITH YEH", []string{"\u0646\u062D\u064A"}, [4]rune{0, 0, 0, 0xFDB3}},
	{"ARABIC LIGATURE NOON WITH HEH", []string{"\u0646\u0647"}, [4]rune{0, 0xFCD6, 0xFCEF, 0}},
	{"ARABIC LIGATURE NOON WITH JEEM", []string{"\u0646\u062C"}, [4]rune{0xFC4B, 0xFCD2, 0, 0}},
	{"ARABIC LIGATURE NOON WITH JEEM WITH ALEF MAKSURA", []string{"\u0646\u062C\u0649"}, [4]rune{0, 0, 0, 0xFD99}},
	{"ARABIC LIGATURE NOON WITH JEEM WITH HAH", []string{"\u0646\u062C\u062D"}, [4]rune{0, 0xFDB8, 0, 0xFDBD}},
	{"ARABIC LIGATURE NOON WITH JEEM WITH MEEM", []string{"\u0646\u062C\u0645"}, [4]rune{0, 0xFD98, 0, 0xFD97}},
	{"ARABIC LIGATURE NOON WITH JEEM WITH YEH", []string{"\u0646\u062C\u064A"}, [4]rune{0, 0, 0, 0xFDC7}},
	{"ARABIC LIGATURE NOON WITH KHAH", []string{"\u0646\u062E"}, [4]rune{0xFC4D, 0xFCD4, 0, 0}},
	{"ARABIC LIGATURE NOON WITH MEEM", []string{"\u0646\u0645"}, [4]rune{0xFC4E, 0xFCD5, 0xFCEE, 0xFC8C}},
	{"ARABIC LIGATURE NOON WITH MEEM WITH ALEF MAKSURA", []string{"\u0646\u0645\u0649"}, [4]rune{0, 0, 0, 0xFD9B}},
	{"ARABIC LIGATURE NOON WITH MEEM WITH YEH", []string{"\u0646\u0645\u064A"}, [4]rune{0, 0, 0, 0xFD9A}},
	{"ARABIC LIGATURE NOON WITH NOON", []string{"\u0646\u0646"}, [4]rune{0, 0, 0, 0xFC8D}},
	{"ARABIC LIGATURE NOON WITH REH", []string{"\u0646\u0631"}, [4]rune{0, 0, 0, 0xFC8A}},
	{"ARABIC LIGATURE NOON WITH YEH", []string{"\u0646\u064A"}, [4]rune{0xFC50, 0, 0, 0xFC8F}},
	{"ARABIC LIGATURE NOON WITH ZAIN", []string{"\u0646\u0632"}, [4]rune{0, 0, 0, 0xFC8B}},
	{"ARABIC LIGATURE QAF WITH ALEF MAKSURA", []string{"\u0642\u0649"}, [4]rune{0xFC35, 0, 0, 0xFC7E}},
	{"ARABIC LIGATURE QAF WITH HAH", []string{"\u0642\u062D"}, [4]rune{0xFC33, 0xFCC2, 0, 0}},
	{"ARABIC LIGATURE QAF WITH MEEM", []string{"\u0642\u0645"}, [4]rune{0xFC34, 0xFCC3, 0, 0}},
	{"ARABIC LIGATURE QAF WITH MEEM WITH HAH", []string{"\u0642\u0645\u062D"}, [4]rune{0, 0xFDB4, 0, 0xFD7E}},
	{"ARABIC LIGATURE QAF WITH MEEM WITH MEEM", []string{"\u0642\u0645\u0645"}, [4]rune{0, 0, 0, 0xFD7F}},
	{"ARABIC LIGATURE QAF WITH MEEM WITH YEH", []string{"\u0642\u0645\u064A"}, [4]rune{0, 0, 0, 0xFDB2}},
	{"ARABIC LIGATURE QAF WITH YEH", []string{"\u0642\u064A"}, [4]rune{0xFC36, 0, 0, 0xFC7F}},
	{"ARABIC LIGATURE REH WITH SUPERSCRIPT ALEF", []string{"\u0631\u0670"}, [4]rune{0xFC5C, 0, 0, 0}},
	{"ARABIC LIGATURE SAD WITH ALEF MAKSURA", []string{"\u0635\u0649"}, [4]rune{0xFD05, 0, 0, 0xFD21}},
	{"ARABIC LIGATURE SAD WITH HAH", []string{"\u0635\u062D"}, [4]rune{0xFC20, 0xFCB1, 0, 0}},
	{"ARABIC LIGATURE SAD WITH HAH WITH HAH", []string{"\u0635\u062D\u062D"}, [4]rune{0, 0xFD65, 0, 0xFD64}},
	{"ARABIC LIGATURE SAD WITH HAH WITH YEH", []string{"\u0635\u062D\u064A"}, [4]rune{0, 0, 0, 0xFDA9}},
	{"ARABIC LIGATURE SAD WITH KHAH", []string{"\u0635\u062E"}, [4]rune{0, 0xFCB2, 0, 0}},
	{"ARABIC LIGATURE SAD WITH MEEM", []string{"\u0635\u0645"}, [4]rune{0xFC21, 0xFCB3, 0, 0}},
	{"ARABIC LIGATURE SAD WITH MEEM WITH MEEM", []string{"\u0635\u0645\u0645"}, [4]rune{0, 0xFDC5, 0, 0xFD66}},
	{"ARABIC LIGATURE SAD WITH REH", []string{"\u0635\u0631"}, [4]rune{0xFD0F, 0, 0, 0xFD2B}},
	{"ARABIC LIGATURE SAD WITH YEH", []string{"\u0635\u064A"}, [4]rune{0xFD06, 0, 0, 0xFD22}},
	{"ARABIC LIGATURE SEEN WITH ALEF MAKSURA", []string{"\u0633\u0649"}, [4]rune{0xFCFB, 0, 0, 0xFD17}},
	{"ARABIC LIGATURE SEEN WITH HAH", []string{"\u0633\u062D"}, [4]rune{0xFC1D, 0xFCAE, 0xFD35, 0}},
	{"ARABIC LIGATURE SEEN WITH HAH WITH JEEM", []string{"\u0633\u062D\u062C"}, [4]rune{0, 0xFD5C, 0, 0}},
	{"ARABIC LIGATURE SEEN WITH HEH", []string{"\u0633\u0647"}, [4]rune{0, 0xFD31, 0xFCE8, 0}},
	{"ARABIC LIGATURE SEEN WITH JEEM", []string{"\u0633\u062C"}, [4]rune{0xFC1C, 0xFCAD, 0xFD34, 0}},
	{"ARABIC LIGATURE SEEN WITH JEEM WITH ALEF MAKSURA", []string{"\u0633\u062C\u0649"}, [4]rune{0, 0, 0, 0xFD5E}},
	{"ARABIC LIGATURE SEEN WITH JEEM WITH HAH", []string{"\u0633\u062C\u062D"}, [4]rune{0, 0xFD5D, 0, 0}},
	{"ARABIC LIGATURE SEEN WITH KHAH", []string{"\u0633\u062E"}, [4]rune{0xFC1E, 0xFCAF, 0xFD36, 0}},
	{"ARABIC LIGATURE SEEN WITH KHAH WITH ALEF MAKSURA", []string{"\u0633\u062E\u0649"}, [4]rune{0, 0, 0, 0xFDA8}},
	{"ARABIC LIGATURE SEEN WITH KHAH WITH YEH", []string{"\u0633\u062E\u064A"}, [4]rune{0, 0, 0, 0xFDC6}},
	{"ARABIC LIGATURE SEEN WITH MEEM", []string{"\u0633\u0645"}, [4]rune{0xFC1F, 0xFCB0, 0xFCE7, 0}},
	{"ARABIC LIGATURE SEEN WITH MEEM WITH HAH", []string{"\u0633\u0645\u062D"}, [4]rune{0, 0xFD60, 0, 0xFD5F}},
	{"ARABIC LIGATURE SEEN WITH MEEM WITH JEEM", []string{"\u0633\u0645\u062C"}, [4]rune{0, 0xFD61, 0, 0}},
	{"ARABIC LIGATURE SEEN WITH MEEM WITH MEEM", []string{"\u0633\u0645\u0645"}, [4]rune{0, 0xFD63, 0, 0xFD62}},
	{"ARABIC LIGATURE SEEN WITH REH", []string{"\u0633\u0631"}, [4]rune{0xFD0E, 0, 0, 0xFD2A}},
	{"ARABIC LIGATURE SEEN WITH YEH", []string{"\u0633\u064A"}, [4]rune{0xFCFC, 0, 0, 0xFD18}},
	{"ARABIC LIGATURE SHADDA WITH DAMMA", []string{"\u0640\u064F\u0651"}, [4]rune{0, 0, 0xFCF3, 0}},
	{"ARABIC LIGATURE SHADDA WITH FATHA", []string{"\u0640\u064E\u0651"}, [4]rune{0, 0, 0xFCF2, 0}},
	{"ARABIC LIGATURE SHADDA WITH KASRA", []string{"\u0640\u0650\u0651"}, [4]rune{0, 0, 0xFCF4, 0}},
	{"ARABIC LIGATURE SHEEN WITH ALEF MAKSURA", []string{"\u0634\u0649"}, [4]rune{0xFCFD, 0, 0, 0xFD19}},
	{"ARABIC LIGATURE SHEEN WITH HAH", []string{"\u0634\u062D"}, [4]rune{0xFD0A, 0xFD2E, 0xFD38, 0xFD26}},
	{"ARABIC LIGATURE SHEEN WITH HAH WITH MEEM", []string{"\u0634\u062D\u0645"}, [4]rune{0, 0xFD68, 0, 0xFD67}},
	{"ARABIC LIGATURE SHEEN WITH HAH WITH YEH", []string{"\u0634\u062D\u064A"}, [4]rune{0, 0, 0, 0xFDAA}},
	{"ARABIC LIGATURE SHEEN WITH HEH", []string{"\u0634\u0647"}, [4]rune{0, 0xFD32, 0xFCEA, 0}},
	{"ARABIC LIGATURE SHEEN WITH JEEM", []string{"\u0634\u062C"}, [4]rune{0xFD09, 0xFD2D, 0xFD37, 0xFD25}},
	{"ARABIC LIGATURE SHEEN WITH JEEM WITH YEH", []string{"\u0634\u062C\u064A"}, [4]rune{0, 0, 0, 0xFD69}},
	{"ARABIC LIGATURE SHEEN WITH KHAH", []string{"\u0634\u062E"}, [4]rune{0xFD0B, 0xFD2F, 0xFD39, 0xFD27}},
	{"ARABIC LIGATURE SHEEN WITH MEEM", []string{"\u0634\u0645"}, [4]rune{0xFD0C, 0xFD30, 0xFCE9, 0xFD28}},
	{"ARABIC LIGATURE SHEEN WITH MEEM WITH KHAH", []string{"\u0634\u0645\u062E"}, [4]rune{0, 0xFD6B, 0, 0xFD6A}},
	{"ARABIC LIGATURE SHEEN WITH MEEM WITH MEEM", []string{"\u0634\u0645\u0645"}, [4]rune{0, 0xFD6D, 0, 0xFD6C}},
	{"ARABIC LIGATURE SHEEN WITH REH", []string{"\u0634\u0631"}, [4]rune{0xFD0D, 0, 0, 0xFD29}},
	{"ARABIC LIGATURE SHEEN WITH YEH", []string{"\u0634\u064A"}, [4]rune{0xFCFE, 0, 0, 0xFD1A}},
	{"ARABIC LIGATURE TAH WITH ALEF MAKSURA", []string{"\u0637\u0649"}, [4]rune{0xFCF5, 0, 0, 0xFD11}},
	{"ARABIC LIGATURE TAH WITH HAH", []string{"\u0637\u062D"}, [4]rune{0xFC26, 0xFCB8, 0, 0}},
	{"ARABIC LIGATURE TAH WITH MEEM", []string{"\u0637\u0645"}, [4]rune{0xFC27, 0xFD33, 0xFD3A, 0}},
	{"ARABIC LIGATURE TAH WITH MEEM WITH HAH", []string{"\u0637\u0645\u062D"}, [4]rune{0, 0xFD72, 0, 0xFD71}},
	{"ARABIC LIGATURE TAH WITH MEEM WITH MEEM", []string{"\u0637\u0645\u0645"}, [4]rune{0, 0xFD73, 0, 0}},
	{"ARABIC LIGATURE TAH WITH MEEM WITH YEH", []string{"\u0637\u0645\u064A"}, [4]rune{0, 0, 0, 0xFD74}},
	{"ARABIC LIGATURE TAH WITH YEH", []string{"\u0637\u064A"}, [4]rune{0xFCF6, 0, 0, 0xFD12}},
	{"ARABIC LIGATURE TEH WITH ALEF MAKSURA", []string{"\u062A\u0649"}, [4]rune{0xFC0F, 0, 0, 0xFC74}},
	{"ARABIC LIGATURE TEH WITH HAH", []string{"\u062A\u062D"}, [4]rune{0xFC0C, 0xFCA2, 0, 0}},
	{"ARABIC LIGATURE TEH WITH HAH WITH JEEM", []string{"\u062A\u062D\u062C"}, [4]rune{0, 0xFD52, 0, 0xFD51}},
	{"ARABIC LIGATURE TEH WITH HAH WITH MEEM", []string{"\u062A\u062D\u0645"}, [4]rune{0, 0xFD53, 0, 0}},
	{"ARABIC LIGATURE TEH WITH HEH", []string{"\u062A\u0647"}, [4]rune{0, 0xFCA5, 0xFCE4, 0}},
	{"ARABIC LIGATURE TEH WITH JEEM", []string{"\u062A\u062C"}, [4]rune{0xFC0B, 0xFCA1, 0, 0}},
	{"ARABIC LIGATURE TEH WITH JEEM WITH ALEF MAKSURA", []string{"\u062A\u062C\u0649"}, [4]rune{0, 0, 0, 0xFDA0}},
	{"ARABIC LIGATURE TEH WITH JEEM WITH MEEM", []string{"\u062A\u062C\u0645"}, [4]rune{0, 0xFD50, 0, 0}},
	{"ARABIC LIGATURE TEH WITH JEEM WITH YEH", []string{"\u062A\u062C\u064A"}, [4]rune{0, 0, 0, 0xFD9F}},
	{"ARABIC LIGATURE TEH WITH KHAH", []string{"\u062A\u062E"}, [4]rune{0xFC0D, 0xFCA3, 0, 0}},
	{"ARABIC LIGATURE TEH WITH KHAH WITH ALEF MAKSURA", []string{"\u062A\u062E\u0649"}, [4]rune{0, 0, 0, 0xFDA2}},
	{"ARABIC LIGATURE TEH WITH KHAH WITH MEEM", []string{"\u062A\u062E\u0645"}, [4]rune{0, 0xFD54, 0, 0}},
	{"ARABIC LIGATURE TEH WITH KHAH WITH YEH", []string{"\u062A\u062E\u064A"}, [4]rune{0, 0, 0, 0xFDA1}},
	{"ARABIC LIGATURE TEH WITH MEEM", []string{"\u062A\u0645"}, [4]rune{0xFC0E, 0xFCA4, 0xFCE3, 0xFC72}},
	{"ARABIC LIGATURE TEH WITH MEEM WITH ALEF MAKSURA", []string{"\u062A\u0645\u0649"}, [4]rune{0, 0, 0, 0xFDA4}},
	{"ARABIC LIGATURE TEH WITH MEEM WITH HAH", []string{"\u062A\u0645\u062D"}, [4]rune{0, 0xFD56, 0, 0}},
	{"ARABIC LIGATURE TEH WITH MEEM WITH JEEM", []string{"\u062A\u0645\u062C"}, [4]rune{0, 0xFD55, 0, 0}},
	{"ARABIC LIGATURE TEH WITH MEEM WITH KHAH", []string{"\u062A\u0645\u062E"}, [4]rune{0, 0xFD57, 0, 0}},
	{"ARABIC LIGATURE TEH WITH MEEM WITH YEH", []string{"\u062A\u0645\u064A"}, [4]rune{0, 0, 0, 0xFDA3}},
	{"ARABIC LIGATURE TEH WITH NOON", []string{"\u062A\u0646"}, [4]rune{0, 0, 0, 0xFC73}},
	{"ARABIC LIGATURE TEH WITH REH", []string{"\u062A\u0631"}, [4]rune{0, 0, 0, 0xFC70}},
	{"ARABIC LIGATURE TEH WITH YEH", []string{"\u062A\u064A"}, [4]rune{0xFC10, 0, 0, 0xFC75}},
	{"ARABIC LIGATURE TEH WITH ZAIN", []string{"\u062A\u0632"}, [4]rune{0, 0, 0, 0xFC71}},
	{"ARABIC LIGATURE THAL WITH SUPERSCRIPT ALEF", []string{"\u0630\u0670"}, [4]rune{0xFC5B, 0, 0, 0}},
	{"ARABIC LIGATURE THEH WITH ALEF MAKSURA", []string{"\u062B\u0649"}, [4]rune{0xFC13, 0, 0, 0xFC7A}},
	{"ARABIC LIGATURE THEH WITH HEH", []string{"\u062B\u0647"}, [4]rune{0, 0, 0xFCE6, 0}},
	{"ARABIC LIGATURE THEH WITH JEEM", []string{"\u062B\u062C"}, [4]rune{0xFC11, 0, 0, 0}},
	{"ARABIC LIGATURE THEH WITH MEEM", []string{"\u062B\u0645"}, [4]rune{0xFC12, 0xFCA6, 0xFCE5, 0xFC78}},
	{"ARABIC LIGATURE THEH WITH NOON", []string{"\u062B\u0646"}, [4]rune{0, 0, 0, 0xFC79}},
	{"ARABIC LIGATURE THEH WITH REH", []string{"\u062B\u0631"}, [4]rune{0, 0, 0, 0xFC76}},
	{"ARABIC LIGATURE THEH WITH YEH", []string{"\u062B\u064A"}, [4]rune{0xFC14, 0, 0, 0xFC7B}},
	{"ARABIC LIGATURE THEH WITH ZAIN", []string{"\u062B\u0632"}, [4]rune{0, 0, 0, 0xFC77}},
	{"ARABIC LIGATURE UIGHUR KIRGHIZ YEH WITH HAMZA ABOVE WITH ALEF MAKSURA", []string{"\u0626\u0649"}, [4]rune{0xFBF9, 0xFBFB, 0, 0xFBFA}},
	{"ARABIC LIGATURE YEH WITH ALEF MAKSURA", []string{"\u064A\u0649"}, [4]rune{0xFC59, 0, 0, 0xFC95}},
	{"ARABIC LIGATURE YEH WITH HAH", []string{"\u064A\u062D"}, [4]rune{0xFC56, 0xFCDB, 0, 0}},
	{"ARABIC LIGATURE YEH WITH HAH WITH YEH", []string{"\u064A\u062D\u064A"}, [4]rune{0, 0, 0, 0xFDAE}},
	{"ARABIC LIGATURE YEH WITH HAMZA ABOVE WITH AE", []string{"\u0626\u06D5"}, [4]rune{0xFBEC, 0, 0, 0xFBED}},
	{"ARABIC LIGATURE YEH WITH HAMZA ABOVE WITH ALEF", []string{"\u0626\u0627"}, [4]rune{0xFBEA, 0, 0, 0xFBEB}},
	{"ARABIC LIGATURE YEH WITH HAMZA ABOVE WITH ALEF MAKSURA", []string{"\u0626\u0649"}, [4]rune{0xFC03, 0, 0, 0xFC68}},
	{"ARABIC LIGATURE YEH WITH HAMZA ABOVE WITH E", []string{"\u0626\u06D0"}, [4]rune{0xFBF6, 0xFBF8, 0, 0xFBF7}},
	{"ARABIC LIGATURE YEH WITH HAMZA ABOVE WITH HAH", []string{"\u0626\u062D"}, [4]rune{0xFC01, 0xFC98, 0, 0}},
	{"ARABIC LIGATURE YEH WITH HAMZA ABOVE WITH HEH", []string{"\u0626\u0647"}, [4]rune{0, 0xFC9B, 0xFCE0, 0}},
	{"ARABIC LIGATURE YEH WITH HAMZA ABOVE WITH JEEM", []string{"\u0626\u062C"}, [4]rune{0xFC00, 0xFC97, 0, 0}},
	{"ARABIC LIGATURE YEH WITH HAMZA ABOVE WITH KHAH", []string{"\u0626\u062E"}, [4]rune{0, 0xFC99, 0, 0}},
	{"ARABIC LIGATURE YEH WITH HAMZA ABOVE WITH MEEM", []string{"\u0626\u0645"}, [4]rune{0xFC02, 0xFC9A, 0xFCDF, 0xFC66}},
	{"ARABIC LIGATURE YEH WITH HAMZA ABOVE WITH NOON", []string{"\u0626\u0646"}, [4]rune{0, 0, 0, 0xFC67}},
	{"ARABIC LIGATURE YEH WITH HAMZA ABOVE WITH OE", []string{"\u0626\u06C6"}, [4]rune{0xFBF2, 0, 0, 0xFBF3}},
	{"ARABIC LIGATURE YEH WITH HAMZA ABOVE WITH REH", []string{"\u0626\u0631"}, [4]rune{0, 0, 0, 0xFC64}},
	{"ARABIC LIGATURE YEH WITH HAMZA ABOVE WITH U", []string{"\u0626\u06C7"}, [4]rune{0xFBF0, 0, 0, 0xFBF1}},
	{"ARABIC LIGATURE YEH WITH HAMZA ABOVE WITH WAW", []string{"\u0626\u0648"}, [4]rune{0xFBEE, 0, 0, 0xFBEF}},
	{"ARABIC LIGATURE YEH WITH HAMZA ABOVE WITH YEH", []string{"\u0626\u064A"}, [4]rune{0xFC04, 0, 0, 0xFC69}},
	{"ARABIC LIGATURE YEH WITH HAMZA ABOVE WITH YU", []string{"\u0626\u06C8"}, [4]rune{0xFBF4, 0, 0, 0xFBF5}},
	{"ARABIC LIGATURE YEH WITH HAMZA ABOVE WITH ZAIN", []string{"\u0626\u0632"}, [4]rune{0, 0, 0, 0xFC65}},
	{"ARABIC LIGATURE YEH WITH HEH", []string{"\u064A\u0647"}, [4]rune{0, 0xFCDE, 0xFCF1, 0}},
	{"ARABIC LIGATURE YEH WITH JEEM", []string{"\u064A\u062C"}, [4]rune{0xFC55, 0xFCDA, 0, 0}},
	{"ARABIC LIGATURE YEH WITH JEEM WITH YEH", []string{"\u064A\u062C\u064A"}, [4]rune{0, 0, 0, 0xFDAF}},
	{"ARABIC LIGATURE YEH WITH KHAH", []string{"\u064A\u062E"}, [4]rune{0xFC57, 0xFCDC, 0, 0}},
	{"ARABIC LIGATURE YEH WITH MEEM", []string{"\u064A\u0645"}, [4]rune{0xFC58, 0xFCDD, 0xFCF0, 0xFC93}},
	{"ARABIC LIGATURE YEH WITH MEEM WITH MEEM", []string{"\u064A\u0645\u0645"}, [4]rune{0, 0xFD9D, 0, 0xFD9C}},
	{"ARABIC LIGATURE YEH WITH MEEM WITH YEH", []string{"\u064A\u0645\u064A"}, [4]rune{0, 0, 0, 0xFDB0}},
	{"ARABIC LIGATURE YEH WITH NOON", []string{"\u064A\u0646"}, [4]rune{0, 0, 0, 0xFC94}},
	{"ARABIC LIGATURE YEH WITH REH", []string{"\u064A\u0631"}, [4]rune{0, 0, 0, 0xFC91}},
	{"ARABIC LIGATURE YEH WITH YEH", []string{"\u064A\u064A"}, [4]rune{0xFC5A, 0, 0, 0xFC96}},
	{"ARABIC LIGATURE YEH WITH ZAIN", []string{"\u064A\u0632"}, [4]rune{0, 0, 0, 0xFC92}},
	{"ARABIC LIGATURE ZAH WITH MEEM", []string{"\u0638\u0645"}, [4]rune{0xFC28, 0xFCB9, 0xFD3B, 0}},
}
