package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/bytedance/sonic"

	"studyfee_backend/internals/configs"
	"studyfee_backend/internals/features/analytics/tracking"
	"studyfee_backend/internals/features/catalog/classifier"
	"studyfee_backend/internals/features/catalog/filter"
	"studyfee_backend/internals/features/catalog/model"
	"studyfee_backend/internals/features/catalog/search"
	"studyfee_backend/internals/features/finance/estimates/service"
	catalogseed "studyfee_backend/internals/seeds/catalog"
)

type app struct {
	catalog *model.Catalog
	classes *classifier.Classifier
	state   *filter.State
	tracker *tracking.Tracker
	search  *tracking.SearchDebouncer
	asJSON  bool
}

func main() {
	var (
		query       = flag.String("q", "", "search query")
		programme   = flag.String("programme", string(model.ProgrammeAll), "programme level (all, certificate, graduate, post_graduate, integrated)")
		stream      = flag.String("stream", model.StreamAll, "stream / discipline")
		courseID    = flag.String("course", "", "course id untuk ringkasan biaya")
		pct         = flag.Float64("pct", -1, "persentase beasiswa; -1 = semua tier")
		asJSON      = flag.Bool("json", false, "output JSON")
		interactive = flag.Bool("i", false, "mode interaktif (baca perintah dari stdin)")
	)
	flag.Parse()

	configs.LoadEnv()

	cat, err := catalogseed.LoadFile(configs.CatalogFile)
	if err != nil {
		log.Fatalf("[ERROR] ❌ Gagal memuat catalog: %v", err)
	}
	rules, err := classifier.LoadRulesFile(configs.RulesFile)
	if err != nil {
		log.Fatalf("[ERROR] ❌ Gagal memuat rule klasifikasi: %v", err)
	}
	log.Printf("[INFO] ✅ Catalog siap: %d course, %d school", len(cat.Courses), len(cat.Schools))

	classes := classifier.New(rules)
	matcher := search.NewMatcher(cat.Schools, classes)
	f := filter.New(classes, matcher, cat.Schools)

	var emitter tracking.Emitter = tracking.NopEmitter{}
	if configs.TrackingEnabled {
		emitter = tracking.LogEmitter{}
	}
	tracker := tracking.NewTracker(tracking.NewSession(time.Now()), emitter)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{
		catalog: cat,
		classes: classes,
		state:   filter.NewState(f, cat.Courses),
		tracker: tracker,
		search: tracking.NewSearchDebouncer(configs.SearchDebounce, func(q string) {
			tracker.Search(ctx, q)
		}),
		asJSON: *asJSON,
	}
	defer a.search.Stop()

	if *interactive {
		a.repl(ctx)
	} else {
		a.applyFilters(ctx, model.ProgrammeLevel(*programme), *stream, *query)
		a.printResults()
		if *courseID != "" {
			if err := a.printSummary(ctx, *courseID, *pct); err != nil {
				log.Printf("[ERROR] ❌ %v", err)
			}
		}
	}

	snap := tracker.Exit(ctx)
	log.Printf("[INFO] ℹ️ Sesi selesai: lead_score=%d quality=%s", snap.LeadScore, snap.Quality)
}

func (a *app) applyFilters(ctx context.Context, programme model.ProgrammeLevel, stream, query string) {
	if programme != model.ProgrammeAll && !programme.Valid() {
		log.Printf("[WARN] ⚠️ Programme %q tidak dikenal, pakai 'all'", programme)
		programme = model.ProgrammeAll
	}
	a.state.SetProgramme(programme)
	a.tracker.ProgrammeSelected(ctx, programme)
	if a.state.SetStream(stream) {
		a.tracker.StreamSelected(ctx, stream)
	} else if stream != model.StreamAll {
		log.Printf("[WARN] ⚠️ Stream %q tidak tersedia untuk programme %s", stream, programme)
	}
	// SetProgramme mengosongkan query, jadi query di-set terakhir
	a.state.SetQuery(query)
	a.tracker.Search(ctx, query)
}

func (a *app) printResults() {
	res := a.state.Results()
	if a.asJSON {
		out, err := sonic.ConfigStd.MarshalIndent(res, "", "  ")
		if err != nil {
			log.Printf("[ERROR] ❌ Gagal encode hasil: %v", err)
			return
		}
		fmt.Println(string(out))
		return
	}

	if res.Empty() {
		fmt.Println("No courses found.")
		return
	}
	for _, g := range res.Groups {
		fmt.Printf("\n%s (%s)\n", g.SchoolName, g.Code)
		for _, c := range g.Courses {
			fmt.Printf("  - %-24s %s [%s, %s]\n", c.ID, c.Title, a.classes.ProgrammeLevel(c), a.classes.Stream(c))
		}
	}
	fmt.Printf("\nStreams: %s\n", strings.Join(a.state.StreamOptions(), ", "))
}

// printSummary pct < 0 = cetak semua tier beasiswa course.
func (a *app) printSummary(ctx context.Context, courseID string, pct float64) error {
	course, ok := a.catalog.FindByID(courseID)
	if !ok {
		return fmt.Errorf("course %q tidak ditemukan", courseID)
	}
	a.tracker.CourseSelected(ctx, course, a.catalog.SchoolName(course.Group))

	tiers := []float64{pct}
	if pct < 0 {
		tiers = tiers[:0]
		for _, p := range service.ScholarshipOptions(course) {
			tiers = append(tiers, float64(p))
		}
	}

	for _, p := range tiers {
		a.tracker.ScholarshipViewed(ctx, course.Title, int(p))
		if a.asJSON {
			out, err := sonic.ConfigStd.MarshalIndent(service.ComputeBreakdown(course, p, a.catalog.MandatoryFees), "", "  ")
			if err != nil {
				return fmt.Errorf("encode breakdown: %w", err)
			}
			fmt.Println(string(out))
			continue
		}
		fmt.Printf("\n=== %s ===\n", service.OptionLabel(p))
		fmt.Println(service.GenerateSummaryText(course, p, a.catalog.MandatoryFees))
	}
	return nil
}

const replHelp = `perintah:
  <teks>              cari course
  :p <programme>      pilih programme
  :s <stream>         pilih stream
  :c <id> [pct]       ringkasan biaya course
  :x                  hapus pilihan course
  :q                  keluar`

func (a *app) repl(ctx context.Context) {
	fmt.Println(replHelp)
	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !sc.Scan() || ctx.Err() != nil {
			return
		}
		line := strings.TrimSpace(sc.Text())
		cmd, arg, _ := strings.Cut(line, " ")

		switch cmd {
		case ":q":
			return
		case ":p":
			p := model.ProgrammeLevel(strings.TrimSpace(arg))
			if p != model.ProgrammeAll && !p.Valid() {
				fmt.Println("programme tidak dikenal")
				continue
			}
			if a.state.SetProgramme(p) {
				fmt.Println("stream di-reset ke 'all'")
			}
			a.tracker.ProgrammeSelected(ctx, p)
			a.printResults()
		case ":s":
			s := strings.TrimSpace(arg)
			if !a.state.SetStream(s) {
				fmt.Println("stream tidak tersedia, kembali ke 'all'")
			} else {
				a.tracker.StreamSelected(ctx, s)
			}
			a.printResults()
		case ":c":
			id, rawPct, _ := strings.Cut(strings.TrimSpace(arg), " ")
			pct := -1.0
			if rawPct != "" {
				v, err := strconv.ParseFloat(rawPct, 64)
				if err != nil {
					fmt.Println("pct harus angka")
					continue
				}
				pct = v
			}
			if err := a.printSummary(ctx, id, pct); err != nil {
				fmt.Println(err)
			}
		case ":x":
			a.tracker.CourseCleared(ctx)
		default:
			a.state.SetQuery(line)
			a.search.Submit(line)
			a.printResults()
		}
	}
}
