// file: internals/features/catalog/search/abbreviations.go
package search

// Abbreviations singkatan -> frasa ekspansi (sudah dalam bentuk ternormalisasi).
// Pasangan dua arah (ai/ml, ar/vr) ditulis eksplisit di kedua sisi.
var Abbreviations = map[string][]string{
	"cse":           {"computer science", "computer science engineering", "cse"},
	"it":            {"information technology", "it"},
	"eee":           {"electrical", "electronics", "eee"},
	"ece":           {"electronics", "communication", "ece"},
	"me":            {"mechanical", "me"},
	"mba":           {"master of business", "mba", "business administration"},
	"bba":           {"bachelor of business", "bba", "business administration"},
	"bca":           {"bachelor of computer", "bca", "computer application"},
	"mca":           {"master of computer", "mca", "computer application"},
	"mbbs":          {"mbbs", "medicine", "medical"},
	"bds":           {"dental", "bds", "dentistry"},
	"nursing":       {"nursing", "bsc nursing"},
	"pharm":         {"pharmacy", "pharm"},
	"llb":           {"law", "llb", "legal", "ll b"},
	"llm":           {"law", "llm", "ll m", "master of law", "legal"},
	"bsc":           {"bachelor of science", "bsc", "b sc"},
	"msc":           {"master of science", "msc", "m sc"},
	"btech":         {"bachelor of technology", "b tech", "btech"},
	"mtech":         {"master of technology", "m tech", "mtech"},
	"ai":            {"artificial intelligence", "ai", "machine learning", "ml"},
	"ml":            {"machine learning", "ml", "artificial intelligence", "ai"},
	"cyber":         {"cybersecurity", "cyber security", "cyber", "forensics"},
	"blockchain":    {"blockchain", "block chain", "crypto"},
	"cloud":         {"cloud", "cloud computing", "virtualization"},
	"data":          {"data science", "data analytics", "analytics"},
	"fullstack":     {"full stack", "fullstack"},
	"iot":           {"internet of things", "iot", "internet"},
	"ar":            {"augmented reality", "ar", "virtual reality", "vr"},
	"vr":            {"virtual reality", "vr", "augmented reality", "ar"},
	"ir":            {"international relation", "international relations", "ir"},
	"international": {"international relation", "international relations", "international business"},
	"relation":      {"international relation", "international relations"},
}
