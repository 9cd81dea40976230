package letters

// Code points are taken from the Unicode Arabic Presentation Forms-A and -B blocks.

var arabicEntries = []Entry{
	{0x0621, [4]rune{0xFE80, 0, 0, 0}},                // HAMZA
	{0x0622, [4]rune{0xFE81, 0, 0, 0xFE82}},           // ALEF WITH MADDA ABOVE
	{0x0623, [4]rune{0xFE83, 0, 0, 0xFE84}},           // ALEF WITH HAMZA ABOVE
	{0x0624, [4]rune{0xFE85, 0, 0, 0xFE86}},           // WAW WITH HAMZA ABOVE
	{0x0625, [4]rune{0xFE87, 0, 0, 0xFE88}},           // ALEF WITH HAMZA BELOW
	{0x0626, [4]rune{0xFE89, 0xFE8B, 0xFE8C, 0xFE8A}}, // YEH WITH HAMZA ABOVE
	{0x0627, [4]rune{0xFE8D, 0, 0, 0xFE8E}},           // ALEF
	{0x0628, [4]rune{0xFE8F, 0xFE91, 0xFE92, 0xFE90}}, // BEH
	{0x0629, [4]rune{0xFE93, 0, 0, 0xFE94}},           // TEH MARBUTA
	{0x062A, [4]rune{0xFE95, 0xFE97, 0xFE98, 0xFE96}}, // TEH
	{0x062B, [4]rune{0xFE99, 0xFE9B, 0xFE9C, 0xFE9A}}, // THEH
	{0x062C, [4]rune{0xFE9D, 0xFE9F, 0xFEA0, 0xFE9E}}, // JEEM
	{0x062D, [4]rune{0xFEA1, 0xFEA3, 0xFEA4, 0xFEA2}}, // HAH
	{0x062E, [4]rune{0xFEA5, 0xFEA7, 0xFEA8, 0xFEA6}}, // KHAH
	{0x062F, [4]rune{0xFEA9, 0, 0, 0xFEAA}},           // DAL
	{0x0630, [4]rune{0xFEAB, 0, 0, 0xFEAC}},           // THAL
	{0x0631, [4]rune{0xFEAD, 0, 0, 0xFEAE}},           // REH
	{0x0632, [4]rune{0xFEAF, 0, 0, 0xFEB0}},           // ZAIN
	{0x0633, [4]rune{0xFEB1, 0xFEB3, 0xFEB4, 0xFEB2}}, // SEEN
	{0x0634, [4]rune{0xFEB5, 0xFEB7, 0xFEB8, 0xFEB6}}, // SHEEN
	{0x0635, [4]rune{0xFEB9, 0xFEBB, 0xFEBC, 0xFEBA}}, // SAD
	{0x0636, [4]rune{0xFEBD, 0xFEBF, 0xFEC0, 0xFEBE}}, // DAD
	{0x0637, [4]rune{0xFEC1, 0xFEC3, 0xFEC4, 0xFEC2}}, // TAH
	{0x0638, [4]rune{0xFEC5, 0xFEC7, 0xFEC8, 0xFEC6}}, // ZAH
	{0x0639, [4]rune{0xFEC9, 0xFECB, 0xFECC, 0xFECA}}, // AIN
	{0x063A, [4]rune{0xFECD, 0xFECF, 0xFED0, 0xFECE}}, // GHAIN
	{0x0640, [4]rune{0x0640, 0x0640, 0x0640, 0x0640}}, // TATWEEL
	{0x0641, [4]rune{0xFED1, 0xFED3, 0xFED4, 0xFED2}}, // FEH
	{0x0642, [4]rune{0xFED5, 0xFED7, 0xFED8, 0xFED6}}, // QAF
	{0x0643, [4]rune{0xFED9, 0xFEDB, 0xFEDC, 0xFEDA}}, // KAF
	{0x0644, [4]rune{0xFEDD, 0xFEDF, 0xFEE0, 0xFEDE}}, // LAM
	{0x0645, [4]rune{0xFEE1, 0xFEE3, 0xFEE4, 0xFEE2}}, // MEEM
	{0x0646, [4]rune{0xFEE5, 0xFEE7, 0xFEE8, 0xFEE6}}, // NOON
	{0x0647, [4]rune{0xFEE9, 0xFEEB, 0xFEEC, 0xFEEA}}, // HEH
	{0x0648, [4]rune{0xFEED, 0, 0, 0xFEEE}},           // WAW
	{0x0649, [4]rune{0xFEEF, 0, 0, 0xFEF0}},           // ALEF MAKSURA
	{0x064A, [4]rune{0xFEF1, 0xFEF3, 0xFEF4, 0xFEF2}}, // YEH
	{0x0671, [4]rune{0xFB50, 0, 0, 0xFB51}},           // ALEF WASLA
	{0x0677, [4]rune{0xFBDD, 0, 0, 0}},                // U WITH HAMZA ABOVE
	{0x0679, [4]rune{0xFB66, 0xFB68, 0xFB69, 0xFB67}}, // TTEH
	{0x067A, [4]rune{0xFB5E, 0xFB60, 0xFB61, 0xFB5F}}, // TTEHEH
	{0x067B, [4]rune{0xFB52, 0xFB54, 0xFB55, 0xFB53}}, // BEEH
	{0x067E, [4]rune{0xFB56, 0xFB58, 0xFB59, 0xFB57}}, // PEH
	{0x067F, [4]rune{0xFB62, 0xFB64, 0xFB65, 0xFB63}}, // TEHEH
	{0x0680, [4]rune{0xFB5A, 0xFB5C, 0xFB5D, 0xFB5B}}, // BEHEH
	{0x0683, [4]rune{0xFB76, 0xFB78, 0xFB79, 0xFB77}}, // NYEH
	{0x0684, [4]rune{0xFB72, 0xFB74, 0xFB75, 0xFB73}}, // DYEH
	{0x0686, [4]rune{0xFB7A, 0xFB7C, 0xFB7D, 0xFB7B}}, // TCHEH
	{0x0687, [4]rune{0xFB7E, 0xFB80, 0xFB81, 0xFB7F}}, // TCHEHEH
	{0x0688, [4]rune{0xFB88, 0, 0, 0xFB89}},           // DDAL
	{0x068C, [4]rune{0xFB84, 0, 0, 0xFB85}},           // DAHAL
	{0x068D, [4]rune{0xFB82, 0, 0, 0xFB83}},           // DDAHAL
	{0x068E, [4]rune{0xFB86, 0, 0, 0xFB87}},           // DUL
	{0x0691, [4]rune{0xFB8C, 0, 0, 0xFB8D}},           // RREH
	{0x0698, [4]rune{0xFB8A, 0, 0, 0xFB8B}},           // JEH
	{0x06A4, [4]rune{0xFB6A, 0xFB6C, 0xFB6D, 0xFB6B}}, // VEH
	{0x06A6, [4]rune{0xFB6E, 0xFB70, 0xFB71, 0xFB6F}}, // PEHEH
	{0x06A9, [4]rune{0xFB8E, 0xFB90, 0xFB91, 0xFB8F}}, // KEHEH
	{0x06AD, [4]rune{0xFBD3, 0xFBD5, 0xFBD6, 0xFBD4}}, // NG
	{0x06AF, [4]rune{0xFB92, 0xFB94, 0xFB95, 0xFB93}}, // GAF
	{0x06B1, [4]rune{0xFB9A, 0xFB9C, 0xFB9D, 0xFB9B}}, // NGOEH
	{0x06B3, [4]rune{0xFB96, 0xFB98, 0xFB99, 0xFB97}}, // GUEH
	{0x06BA, [4]rune{0xFB9E, 0, 0, 0xFB9F}},           // NOON GHUNNA
	{0x06BB, [4]rune{0xFBA0, 0xFBA2, 0xFBA3, 0xFBA1}}, // RNOON
	{0x06BE, [4]rune{0xFBAA, 0xFBAC, 0xFBAD, 0xFBAB}}, // HEH DOACHASHMEE
	{0x06C0, [4]rune{0xFBA4, 0, 0, 0xFBA5}},           // HEH WITH YEH ABOVE
	{0x06C1, [4]rune{0xFBA6, 0xFBA8, 0xFBA9, 0xFBA7}}, // HEH GOAL
	{0x06C5, [4]rune{0xFBE0, 0, 0, 0xFBE1}},           // KIRGHIZ OE
	{0x06C6, [4]rune{0xFBD9, 0, 0, 0xFBDA}},           // OE
	{0x06C7, [4]rune{0xFBD7, 0, 0, 0xFBD8}},           // U
	{0x06C8, [4]rune{0xFBDB, 0, 0, 0xFBDC}},           // YU
	{0x06C9, [4]rune{0xFBE2, 0, 0, 0xFBE3}},           // KIRGHIZ YU
	{0x06CB, [4]rune{0xFBDE, 0, 0, 0xFBDF}},           // VE
	{0x06CC, [4]rune{0xFBFC, 0xFBFE, 0xFBFF, 0xFBFD}}, // FARSI YEH
	{0x06D0, [4]rune{0xFBE4, 0xFBE6, 0xFBE7, 0xFBE5}}, // E
	{0x06D2, [4]rune{0xFBAE, 0, 0, 0xFBAF}},           // YEH BARREE
	{0x06D3, [4]rune{0xFBB0, 0, 0, 0xFBB1}},           // YEH BARREE WITH HAMZA ABOVE
	{ZWJ, [4]rune{ZWJ, ZWJ, ZWJ, ZWJ}},
}

// kurdishExtraEntries lists letters of the Sorani orthography which are
// missing from the Arabic table. Letters without presentation forms in Unicode
// map to themselves, so they still take part in joining decisions.
var kurdishExtraEntries = []Entry{
	{0x0695, [4]rune{0x0695, 0, 0, 0x0695}},           // REH WITH SMALL V BELOW
	{0x06B5, [4]rune{0x06B5, 0x06B5, 0x06B5, 0x06B5}}, // LAM WITH SMALL V
	{0x06CE, [4]rune{0x06CE, 0x06CE, 0x06CE, 0x06CE}}, // YEH WITH SMALL V
	{0x06D5, [4]rune{0x06D5, 0, 0, 0xFEEA}},           // AE
}
