// sozluk-genislet: tohum öneri sözlüğünü (suggestions.json) yabancı terim
// listesinden türetilen varyasyonlarla hedef boyuta genişletir ve
// suggestions_1000.json olarak yazar. Çevrim dışı çalışan bir araçtır;
// servis bu çıktıyı açılışta okur.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var (
	dataDir string
	target  int
	outFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sozluk-genislet",
		Short: "Öneri sözlüğünü varyasyonlarla hedef boyuta genişletir",
		Run: func(cmd *cobra.Command, args []string) {
			if err := run(); err != nil {
				log.Fatalf("Genişletme başarısız: %v", err)
			}
		},
	}
	rootCmd.Flags().StringVar(&dataDir, "data-dir", "data", "Veri dosyalarının dizini")
	rootCmd.Flags().IntVar(&target, "target", 1000, "Hedef anahtar sayısı")
	rootCmd.Flags().StringVar(&outFile, "out", "suggestions_1000.json", "Çıktı dosyası adı (data-dir içine yazılır)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run() error {
	suggestions, err := readJSON(filepath.Join(dataDir, "suggestions.json"))
	if err != nil {
		return err
	}
	baseTerms, err := readLines(filepath.Join(dataDir, "foreign_terms.txt"))
	if err != nil {
		return err
	}

	// Beyaz liste opsiyonel: varsa bu sözcükler dışarıda bırakılır.
	whitelist := map[string]struct{}{}
	if lines, err := readLines(filepath.Join(dataDir, "whitelist.txt")); err == nil {
		for _, w := range lines {
			whitelist[strings.ToLower(w)] = struct{}{}
		}
	}

	added := 0
	for _, base := range baseTerms {
		if _, skip := whitelist[strings.ToLower(base)]; skip {
			continue
		}
		for _, v := range generateVariants(base) {
			if _, skip := whitelist[strings.ToLower(v)]; skip {
				continue
			}
			if _, exists := suggestions[v]; !exists {
				suggestions[v] = suggestionFor(v)
				added++
				if len(suggestions) >= target {
					break
				}
			}
		}
		if len(suggestions) >= target {
			break
		}
	}

	outPath := filepath.Join(dataDir, outFile)
	data, err := json.MarshalIndent(suggestions, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return err
	}

	fmt.Println("Eklenen:", added)
	fmt.Println("Toplam anahtar:", len(suggestions))
	fmt.Println("Yazıldı:", outPath)
	return nil
}

var (
	spaceRe     = regexp.MustCompile(`\s+`)
	englishRe   = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9\-_/ ]{1,60}$`)
	turkishowns = "ğıüşöçİĞÜŞÖÇ"
)

func normalizeTerm(term string) string {
	return spaceRe.ReplaceAllString(strings.TrimSpace(term), " ")
}

// isTurkishish: Türkçe'ye özgü harf içeren terimler varyasyon üretimine girmez.
func isTurkishish(term string) bool {
	return strings.ContainsAny(term, turkishowns)
}

func englishish(term string) bool {
	return englishRe.MatchString(term)
}

// generateVariants, terimden çoğul, fiil çekimi, türetme eki ve stil
// varyasyonları üretir. Çok kelimeli ifadelerde yalnızca çoğul denenir.
func generateVariants(term string) []string {
	t := normalizeTerm(term)
	variants := map[string]struct{}{t: {}}

	if strings.Contains(t, " ") {
		if englishish(strings.ReplaceAll(t, " ", "")) {
			variants[t+"s"] = struct{}{}
			variants[t+"es"] = struct{}{}
		}
		return sortedKeys(variants)
	}

	if englishish(t) {
		low := strings.ToLower(t)
		variants[low] = struct{}{}

		// çoğul
		variants[low+"s"] = struct{}{}
		variants[low+"es"] = struct{}{}

		// fiil çekimleri (kaba ama sayıyı artırır)
		for _, suf := range []string{"ing", "ed", "er", "ers"} {
			variants[low+suf] = struct{}{}
		}

		// isimleştirme/türetme
		for _, suf := range []string{
			"tion", "tions", "ation", "ations",
			"ization", "izer", "izers", "ality", "ment",
		} {
			variants[low+suf] = struct{}{}
		}

		// küçük stil farkları
		variants[strings.ReplaceAll(low, "-", "_")] = struct{}{}
		variants[strings.ReplaceAll(low, "_", "-")] = struct{}{}
		variants[strings.ToUpper(low[:1])+low[1:]] = struct{}{}
	}

	return sortedKeys(variants)
}

// manualMap: elle seçilmiş Türkçe karşılıklar; kalanlar yer tutucu alır.
var manualMap = map[string][]string{
	"optimize":     {"eniyilemek", "iyileştirmek", "en uygun hâle getirmek"},
	"optimization": {"eniyileme", "iyileştirme", "en uygunlaştırma"},
	"performans":   {"başarım", "verim"},
	"performance":  {"başarım", "verim"},
	"feedback":     {"geri bildirim", "dönüt"},
	"update":       {"güncelleme", "yenileme"},
	"download":     {"indirme"},
	"upload":       {"yükleme", "karşıya yükleme"},
	"online":       {"çevrim içi"},
	"offline":      {"çevrim dışı"},
	"dashboard":    {"gösterge paneli"},
	"deploy":       {"yayına almak", "çalışır hâle getirmek"},
	"release":      {"sürüm", "yayın"},
	"version":      {"sürüm"},
	"ui":           {"kullanıcı arayüzü"},
	"ux":           {"kullanıcı deneyimi"},
	"backend":      {"arka uç"},
	"frontend":     {"ön yüz"},
	"database":     {"veritabanı"},
	"cloud":        {"bulut"},
	"bug":          {"hata"},
	"issue":        {"sorun", "kayıtlı sorun"},
	"fix":          {"düzeltme"},
	"refactor":     {"yeniden düzenlemek", "iyileştirmek (kod)"},
	"meeting":      {"toplantı"},
	"deadline":     {"son tarih"},
	"agenda":       {"gündem"},
}

func suggestionFor(term string) []string {
	if s, ok := manualMap[strings.ToLower(term)]; ok {
		return s
	}
	if isTurkishish(term) {
		return []string{"(Türkçe: dönüştürme yok)"}
	}
	return []string{"(Türkçe karşılık eklenecek)", "(alternatif eklenecek)"}
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func readJSON(path string) (map[string][]string, error) {
	out := map[string][]string{}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
