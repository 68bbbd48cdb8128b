package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mutluarslanoglu/BaglamliTurkcelestirmeYapayZekaDestekliMetinDonusumSistemi/internal/customlist"
	"github.com/mutluarslanoglu/BaglamliTurkcelestirmeYapayZekaDestekliMetinDonusumSistemi/internal/detect"
	"github.com/mutluarslanoglu/BaglamliTurkcelestirmeYapayZekaDestekliMetinDonusumSistemi/internal/lexicon"
	"github.com/mutluarslanoglu/BaglamliTurkcelestirmeYapayZekaDestekliMetinDonusumSistemi/internal/prefs"
	"github.com/mutluarslanoglu/BaglamliTurkcelestirmeYapayZekaDestekliMetinDonusumSistemi/internal/rank"
	"github.com/mutluarslanoglu/BaglamliTurkcelestirmeYapayZekaDestekliMetinDonusumSistemi/internal/textops"
)

const (
	defaultUserID     = "default"
	defaultContextTag = "akademik"
	defaultLevel      = "balanced"

	chosenDelta   = 2
	rejectedDelta = -1
)

// TurkcelestirmeService, tespit motorunu, öneri sıralamayı ve tercih
// öğrenmeyi tek bir uygulama servisi olarak bir araya getirir. Analyze ve
// Apply, paylaşılan tek değişken kaynak olan puan deposu dışında yan etkisizdir
// ve bağımsız istekler arasında eşgüdümsüz çalıştırılabilir.
type TurkcelestirmeService struct {
	lex    *lexicon.Lexicon
	store  prefs.Store
	custom *customlist.List // Redis yoksa nil; statik beyaz listeyle devam edilir
	log    zerolog.Logger
}

func New(lex *lexicon.Lexicon, store prefs.Store, custom *customlist.List, log zerolog.Logger) *TurkcelestirmeService {
	return &TurkcelestirmeService{
		lex:    lex,
		store:  store,
		custom: custom,
		log:    log,
	}
}

// Analyze, metindeki yabancı terim adaylarını bulur ve her biri için
// kişiselleştirilmiş öneri sıralaması döndürür. Depo okuma hatası istek için
// ölümcüldür; tespit kendisi iyi biçimli metinde asla hata üretmez.
func (s *TurkcelestirmeService) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error) {
	userID, contextTag, levelStr := withDefaults(req.UserID, req.ContextTag, req.Level)
	level, err := detect.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}

	lex := s.requestLexicon(ctx)
	cands := detect.DetectCandidates(lex, req.Text, level)

	items := make([]AnalyzeItem, 0, len(cands))
	unique := map[string]struct{}{}
	for _, c := range cands {
		scores, err := s.store.GetScores(ctx, userID, c.ForeignNorm, contextTag)
		if err != nil {
			return nil, err
		}
		items = append(items, AnalyzeItem{
			ID:          c.ID,
			Original:    c.Original,
			ForeignNorm: c.ForeignNorm,
			Start:       c.Start,
			End:         c.End,
			Context:     c.Context,
			Suggestions: rank.Rank(lex.SuggestionsFor(c.ForeignNorm), scores),
		})
		unique[c.ForeignNorm] = struct{}{}
	}

	s.log.Debug().
		Str("user_id", userID).
		Str("level", levelStr).
		Int("candidates", len(items)).
		Msg("Analiz tamamlandı")

	return &AnalyzeResponse{
		Items: items,
		Report: Report{
			CandidatesFound:    len(items),
			UniqueForeignTerms: len(unique),
			Level:              levelStr,
		},
	}, nil
}

// Apply, aynı metni yeniden analiz eder, seçimlere göre geri bildirim puanlar
// (seçilen +2, reddedilen -1) ve seçilen önerileri harf düzenini koruyarak
// metne yerleştirir. Taze analizde bulunmayan candidate_id'ler sessizce
// atlanır; boş reddedilen girdiler yok sayılır.
func (s *TurkcelestirmeService) Apply(ctx context.Context, req ApplyRequest) (*ApplyResponse, error) {
	userID, contextTag, levelStr := withDefaults(req.UserID, req.ContextTag, req.Level)

	analyzed, err := s.Analyze(ctx, AnalyzeRequest{
		UserID:     userID,
		Text:       req.Text,
		ContextTag: contextTag,
		Level:      levelStr,
	})
	if err != nil {
		return nil, err
	}

	items := make(map[string]AnalyzeItem, len(analyzed.Items))
	for _, it := range analyzed.Items {
		items[it.ID] = it
	}

	var reps []textops.Replacement
	for _, ch := range req.Choices {
		it, ok := items[ch.CandidateID]
		if !ok {
			continue
		}

		for _, rejected := range ch.Rejected {
			if rejected == "" {
				continue
			}
			if err := s.store.AddScore(ctx, userID, it.ForeignNorm, rejected, contextTag, rejectedDelta); err != nil {
				return nil, err
			}
		}

		if ch.Chosen != "" {
			if err := s.store.AddScore(ctx, userID, it.ForeignNorm, ch.Chosen, contextTag, chosenDelta); err != nil {
				return nil, err
			}
			reps = append(reps, textops.Replacement{
				Start: it.Start,
				End:   it.End,
				New:   textops.PreserveCasing(it.Original, ch.Chosen),
			})
		}
	}

	newText := textops.ApplyReplacements(req.Text, reps)

	s.log.Info().
		Str("user_id", userID).
		Int("applied", len(reps)).
		Msg("Değişiklikler uygulandı")

	return &ApplyResponse{
		NewText:      newText,
		AppliedCount: len(reps),
		Report:       analyzed.Report,
	}, nil
}

// requestLexicon, Redis'teki kullanıcı beyaz listesini istek başına statik
// sözlüğe katar. Redis yapılandırılmamışsa ya da okunamazsa statik sözlükle
// devam edilir; tespit bu yüzden başarısız olmaz.
func (s *TurkcelestirmeService) requestLexicon(ctx context.Context) *lexicon.Lexicon {
	if s.custom == nil {
		return s.lex
	}
	words, err := s.custom.All(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("Özel beyaz liste okunamadı, statik liste kullanılıyor")
		return s.lex
	}
	return s.lex.WithExtraWhitelist(words)
}

func withDefaults(userID, contextTag, level string) (string, string, string) {
	if userID == "" {
		userID = defaultUserID
	}
	if contextTag == "" {
		contextTag = defaultContextTag
	}
	if level == "" {
		level = defaultLevel
	}
	return userID, contextTag, level
}
