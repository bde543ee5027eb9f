package service

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"thanawya_backend/internal/model"
	"thanawya_backend/internal/state"
	"thanawya_backend/internal/store"
)

// 首页轮换的打气文案，埃及口语
var motivationalQuotes = []string{
	"التعب هيروح.. بس الفرحة والمجموع هيفضلوا معاك العمر كله. استرجل!",
	"قوم دلوقتي وافرم، محدش هيحقق حلمك غيرك.",
	"كل دقيقة تعب دلوقتي = راحة سنين قدام.",
	"انت مش قليل.. انت تقدر تعمل المعجزة.",
	"فرحة أهلك يوم النتيجة تستاهل إنك تموت نفسك مذاكرة.",
	"متخليش السرير يسرق مستقبلك، قوم!",
	"الدحيح مش أحسن منك، هو بس بدأ بدري عنك.. ابدأ دلوقتي.",
	"عافر.. حلمك مش ببلاش.",
	"اللي ذاكر ذاكر؟ لا طبعاً.. العبرة بالخواتيم يا بطل.",
	"يا جبل ما يهزك ريح، الثانوية دي مجرد سلمة لمجدك.",
	"انت قدها وقدود، وربنا مبيحطش حلم في قلبك غير وهو عارف إنك تقدر عليه.",
	"بكرة تفتكر الأيام دي وتضحك وتقول: عداها الوحش.",
	"النجاح مش صدفة، النجاح قرار.. خد القرار دلوقتي.",
	"كل مسألة بتحلها بتقربك خطوة لحلمك.",
	"متستناش الظروف تتحسن، اصنع انت الظروف.",
	"خاف من الفشل؟ لا، خاف إنك متكونش حاولت كفاية.",
	"خليك فاكر: (وَأَن لَّيْسَ لِلْإِنسَانِ إِلَّا مَا سَعَىٰ).",
	"المجموع الكبير عايز قلب حديد ومجهود جبار.",
	"قوم اغسل وشك واستعذ بالله وابدأ.. البداية نص الطريق.",
	"الوقت كالسيف.. اقطعه بمذاكرتك قبل ما يقطع أحلامك.",
	"ركز في ورقتك، ملكش دعوة بغيرك، انت في سباق مع نفسك.",
	"صاحب الناس اللي تشدك لفوق، وابعد عن المحبطين.",
	"تخيل اسمك في كشوف الأوائل.. الإحساس ده يستاهل.",
	"مفيش مستحيل طالما فيه نفس داخل وطالع.",
	"كل ما تتعب افتكر فرحة أمك وهي بتزغرط يوم النتيجة.",
	"اجمد.. الأبطال بيبانوا في الأمتار الأخيرة.",
	"ذاكر كأن مستقبلك كله واقف على الكلمة دي.",
	"السهر والتعب والهالات السوداء.. دي نياشين الشرف لطالب ثانوية.",
	"متيأسش.. لسه في وقت تلم اللي فاتك وتسبق كمان.",
	"خليك طماع في درجاتك، متسيبش ولا نص درجة.",
	"نظم وقتك، رتب أولوياتك، وشوف السحر هيحصل إزاي.",
	"المذاكرة مش عقاب، دي وسيلة عشان تعيش حياة كريمة.",
	"كونك طالب ثانوية عامة دي مسؤولية ورجولة.. كن قدر المسؤولية.",
	"ارمي التليفون شوية.. الدنيا مش هتطير، بس مستقبلك ممكن يطير.",
	"عافر عشان تلبس البالطو الأبيض أو خوذة المهندس.",
	"ربنا كريم أوي، بس لازم يشوف منك السعي.",
	"متذاكرش عشان تنجح، ذاكر عشان تتميز.",
	"خلي طموحك يناطح السحاب.",
	"انت بطل حكايتك.. اكتب نهاية سعيدة.",
	"الفشل هو إنك تبطل تحاول.. طول ما بتحاول انت ناجح.",
	"استغل كل دقيقة، الدقيقة في ثانوية عامة بدرجات.",
	"متخليش حاجة تشتتك، هدفك واضح قدام عينك.",
	"ثق في نفسك وفي قدراتك، انت تقدر تفرم المنهج.",
	"المعافرة هي سر الوصول.",
	"اصبر.. (إِنَّ مَعَ الْعُسْرِ يُسْرًا).",
	"كل درس بتخلصه هو انتصار صغير.",
	"كافئ نفسك بعد كل إنجاز، عشان تقدر تكمل.",
	"نام كويس، كل كويس، وافرم مذاكرة.. المعادلة بسيطة.",
	"اكتب حلمك وعلقه قدامك.. خليه هو البوصلة.",
	"انت مش لوحدك، ربنا معاك ودعوات أهلك سنداك.",
	"بلاش تأجيل.. التسويف هو مقبرة الأحلام.",
	"ابدأ بالصعب وارتاح، ولا تبدأ بالسهل وتكسل.",
	"حل كتير.. الحل هو اللي بيثبت المعلومة.",
	"اغلط دلوقتي في التدريبات عشان متغلطش في الامتحان.",
	"كل غلطة بتتعلم منها بتقربك للدرجة النهائية.",
	"خليك ذكي في مذاكرتك، افهم قبل ما تحفظ.",
	"الكتب دي هي سلاحك في المعركة، حافظ عليها وافهمها.",
	"خليك رخم في المذاكرة، متسيبش المعلومة غير لما تفهمها.",
	"اسأل المدرس، ابحث، دور.. العلم بيحب اللحوح.",
	"تخيل نفسك وانت داخل الكلية اللي بتحلم بيها.",
	"يوم النتيجة هتقول: الحمد لله الذي بنعمته تتم الصالحات.",
	"مجهودك مش هيضيع، ربنا عادل.",
	"خلي عندك يقين بالله.",
	"التوتر طبيعي، حوله لطاقة مذاكرة.",
	"خد نفس عميق وقول: يا رب.",
	"انت مشروع عظيم.. استثمر في نفسك.",
	"الدنيا بتمطر فرص، وانت لازم تكون جاهز.",
	"بلاش حجج.. الناجح بيخلق طريق.",
	"القمة تسع الجميع، بس محتاجة اللي يتعب لها.",
	"متسمعش لكلام الناس اللي بيقولوا (المواد صعبة).. انت أصعب.",
	"المادة الصعبة محتاجة تكرار مش يأس.",
	"راجع أول بأول، التراكمات هي العدو.",
	"خليك منظم، الفوضى بتضيع الوقت.",
	"صلي وادعي.. الدعاء بيغير القدر.",
	"بر الوالدين مفتاح النجاح.. اطلب رضاهم.",
	"خليك إيجابي.. تفاءلوا بالخير تجدوه.",
	"انت قد التحدي.. اثبت لنفسك إنك بطل.",
	"مفيش حاجة اسمها (أنا فاشل).. فيه حاجة اسمها (أنا لسه بحاول).",
	"كل العظماء بدأوا بخطوة.. ابدأ خطوتك.",
	"النجاح طعمه حلو أوي، يستاهل كل مرارة التعب.",
	"اتعب دلوقتي وارتاح بقية عمرك.",
	"اصنع لنفسك مجداً.",
	"الكتب أوفى صديق ليك السنة دي.",
	"بلاش تضيع وقت في الخروجات، بكرة تخرج وتسافر العالم كله.",
	"ركز في هدفك زي الصقر.",
	"خليك عنيد مع المسائل الصعبة.",
	"متستقلش بقدراتك، عقلك ده كنز.",
	"المذاكرة عبادة.. جدد نيتك.",
	"ساعد زمايلك، (والله في عون العبد ما كان العبد في عون أخيه).",
	"ابعد عن الغش، النجاح الحرام ملوش طعم.",
	"خليك أمين مع نفسك في المذاكرة.",
	"قيم مستواك بصدق وحاول تحسن.",
	"اسمع نصايح المدرسين، هما الخبرة.",
	"بلاش توتر الامتحانات، الامتحان مجرد ورق، وانت أكبر منه.",
	"خليك واثق، الثقة نص النجاح.",
	"يا رب توفيقك.. دي الكلمة اللي تريح قلبك.",
	"استعينوا بالصبر والصلاة.",
	"ربنا مبيظلمش حد.. اطمن.",
	"اجتهد.. ولكل مجتهد نصيب.",
	"السنة دي هي سنة الحصاد.. ازرع صح تحصد دهب.",
	"كلنا فخورين بيك وبمجهودك.. كمل يا بطل!",
}

const quoteRotationInterval = 15 * time.Second

// DashboardSummary 首页一次请求带走的聚合视图
type DashboardSummary struct {
	Quote          string          `json:"quote"`
	DaysLeft       int             `json:"daysLeft"`
	ExamDate       string          `json:"examDate"`
	Stats          model.UserStats `json:"stats"`
	CompletionRate int             `json:"completionRate"`
	WeightedTotal  string          `json:"weightedTotal"`
	TopTasks       []model.Task    `json:"topTasks"`
	BiggestGap     *model.Course   `json:"biggestGap,omitempty"`
}

// DashboardService 首页聚合 + 文案轮换
type DashboardService struct {
	container *state.Container
	tasks     *TaskService
	predictor *PredictorService
	stats     *StatsService

	mu    sync.Mutex
	quote string
	rng   *rand.Rand
}

func NewDashboardService(container *state.Container, tasks *TaskService, predictor *PredictorService, stats *StatsService) *DashboardService {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &DashboardService{
		container: container,
		tasks:     tasks,
		predictor: predictor,
		stats:     stats,
		quote:     motivationalQuotes[rng.Intn(len(motivationalQuotes))],
		rng:       rng,
	}
}

func (s *DashboardService) rotateQuote() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quote = motivationalQuotes[s.rng.Intn(len(motivationalQuotes))]
}

func (s *DashboardService) Quote() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quote
}

// RunQuoteTicker 后台定时换一条文案，ctx取消即退出
func (s *DashboardService) RunQuoteTicker(ctx context.Context) {
	ticker := time.NewTicker(quoteRotationInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.rotateQuote()
		}
	}
}

// ExamDate 存档里的考试日，缺失或坏档退回默认
func (s *DashboardService) ExamDate() time.Time {
	raw := s.container.Pref(store.KeyExamDate, model.DefaultExamDate)
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		t, _ = time.Parse(time.RFC3339, model.DefaultExamDate)
	}
	return t
}

func (s *DashboardService) SetExamDate(date time.Time) {
	s.container.SetPref(store.KeyExamDate, date.Format(time.RFC3339))
}

// DaysLeft 到考试日的天数，向上取整，过期显示0
func (s *DashboardService) DaysLeft() int {
	diff := time.Until(s.ExamDate())
	days := int(math.Ceil(diff.Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// Summary 首页聚合：文案、倒计时、成长数值、任务前三条、最需努力的科目
func (s *DashboardService) Summary() DashboardSummary {
	tasks := s.tasks.List()
	if len(tasks) > 3 {
		tasks = tasks[:3]
	}
	return DashboardSummary{
		Quote:          s.Quote(),
		DaysLeft:       s.DaysLeft(),
		ExamDate:       s.ExamDate().Format(time.RFC3339),
		Stats:          s.stats.Stats(),
		CompletionRate: s.tasks.CompletionRate(),
		WeightedTotal:  FormatTotal(s.predictor.WeightedTotal(false)),
		TopTasks:       tasks,
		BiggestGap:     s.predictor.BiggestGap(),
	}
}
