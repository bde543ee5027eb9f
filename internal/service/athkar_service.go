package service

import (
	"fmt"
	"time"

	"thanawya_backend/internal/model"
	"thanawya_backend/internal/state"
	"thanawya_backend/internal/store"
)

// TasbeehWords 数珠循环用的短句，下标取模轮转
var TasbeehWords = []string{
	"سُبْحَانَ اللَّهِ",
	"الْحَمْدُ لِلَّهِ",
	"لَا إِلَهَ إِلَّا اللَّهُ",
	"اللَّهُ أَكْبَرُ",
	"لَا حَوْلَ وَلَا قُوَّةَ إِلَّا بِاللَّهِ",
}

// athkarData 三个场景的固定记诵清单
var athkarData = map[string][]model.DhikrItem{
	"morning": {
		{Text: "اللَّهُ لاَ إِلَهَ إِلاَّ هُوَ الْحَيُّ الْقَيُّومُ لاَ تَأْخُذُهُ سِنَةٌ وَلاَ نَوْمٌ لَهُ مَا فِي السَّمَاوَاتِ وَمَا فِي الأَرْضِ مَنْ ذَا الَّذِي يَشْفَعُ عِنْدَهُ إِلاَّ بِإِذْنِهِ يَعْلَمُ مَا بَيْنَ أَيْدِيهِمْ وَمَا خَلْفَهُمْ وَلاَ يُحِيطُونَ بِشَيْءٍ مِنْ عِلْمِهِ إِلاَّ بِمَا شَاءَ وَسِعَ كُرْسِيُّهُ السَّمَاوَاتِ وَالأَرْضَ وَلاَ يَئُودُهُ حِفْظُهُمَا وَهُوَ الْعَلِيُّ الْعَظِيمُ", Count: 1, Source: "آية الكرسي - البقرة:255"},
		{Text: "أصبحنا على فطرة الإسلام وكلِمة الإخلاص، ودين نبينا محمد صلى الله عليه وسلم، ومِلَّةِ أبينا إبراهيم، حنيفاً مسلماً، وما كان من المشركين.", Count: 1, Source: "رواه أحمد"},
		{Text: "رضيت بالله ربا، وبالإسلام دينا، وبمحمد صلى الله عليه وسلم نبياً.", Count: 3, Source: "رواه أصحاب السنن"},
		{Text: "اللهم إني أسألك علماً نافعاً، ورزقاً طيباً، وعملاً متقبلاً.", Count: 1, Source: "رواه ابن ماجه"},
		{Text: "اللهم بك أصبحنا، وبك أمسينا، وبك نحيا، وبك نموت، وإليك النشور.", Count: 1, Source: "رواه أصحاب السنن"},
		{Text: "لا إله إلا الله وحده، لا شريك له، له الملك، وله الحمد، وهو على كل شيء قدير.", Count: 1, Source: "رواه البزار والطبراني"},
		{Text: "يا حيُّ يا قيوم برحمتك أستغيثُ، أصلح لي شأني كله، ولا تَكلني إلى نفسي طَرْفَةَ عين أبدًا.", Count: 1, Source: "رواه البزار"},
		{Text: "اللهم أنت ربي، لا إله إلا أنت، خلقتني وأنا عبدُك, وأنا على عهدِك ووعدِك ما استطعتُ، أعوذ بك من شر ما صنعتُ، أبوءُ لَكَ بنعمتكَ عَلَيَّ، وأبوء بذنبي، فاغفر لي، فإنه لا يغفرُ الذنوب إلا أنت.", Count: 1, Source: "سيد الاستغفار - رواه البخاري"},
		{Text: "اللهم فاطر السموات والأرض، عالم الغيب والشهادة، رب كل شيء ومليكه، أشهد أن لا إله إلا أنت, أعوذ بك من شرّ نفسي، ومن شرّ الشيطان وشركه، وأن أقترف على نفسي سوءا، أو أجره إلى مسلم.", Count: 1, Source: "رواه الترمذي"},
		{Text: "أصبحنا وأصبح الملك لله، والحمد لله ولا إله إلا الله وحده لا شريك له، له الملك وله الحمد، وهو على كل شيء قدير، أسألك خير ما في هذا اليوم، وخير ما بعده، وأعوذ بك من شر هذا اليوم، وشر ما بعده، وأعوذ بك من الكسل وسوء الكبر، وأعوذ بك من عذاب النار وعذاب القبر.", Count: 1, Source: "رواه مسلم"},
		{Text: "اللهم إني أسألك العفو والعافية في الدنيا والآخرة، اللهم أسألك العفو والعافية في ديني ودنياي وأهلي ومالي، اللهم استر عوراتي، وآمن روعاتي، واحفظني من بين يدي، ومن خلفي، وعن يميني، وعن شمالي، ومن فوقي، وأعوذ بك أن أغتال من تحتي.", Count: 1, Source: "رواه أبو داود وابن ماجه"},
		{Text: "بسم الله الذي لا يضر مع اسمه شيء في الأرض ولا في السماء، وهو السميع العليم.", Count: 3, Source: "رواه أصحاب السنن"},
		{Text: "سبحان الله عدد خلقه، سبحان الله رضا نفسه، سبحان الله زنة عرشه، سبحان الله مداد كلماته.", Count: 3, Source: "رواه مسلم"},
		{Text: "اللهم عافني في بدني، اللهم عافني في سمعي، اللهم عافني في بصري، لا إله إلا أنت، اللهم إني أعوذ بك من الكفر والفقر، اللهم إني أعوذ بك من عذاب القبر، لا إله إلا أنت.", Count: 3, Source: "رواه أبو داود"},
		{Text: "قراءة سور: الإخلاص، والفلق، والناس.", Count: 3, Source: "رواه الترمذي"},
		{Text: "حسبي الله لا إله إلا هو عليه توكلت وهو رب العرش العظيم", Count: 7, Source: "رواه أبو داود"},
		{Text: "اللهم إني أصبحت، أُشهدك وأُشهد حملة عرشك وملائكتك وجميع خلقك أنك أنت الله، وحدك لا شريك لك وأن محمداً عبدك ورسولك.", Count: 4, Source: "أبو داود والترمذي"},
		{Text: "لا إله إلا الله وحده، لا شريك له، له الملك، وله الحمد، يحيي ويميت، وهو على كل شيء قدير.", Count: 10, Source: "رواه ابن حبان"},
		{Text: "سبحان الله وبحمده.", Count: 100, Source: "رواه مسلم"},
		{Text: "أستغفر الله.", Count: 100, Source: "رواه ابن أبي شيبة"},
		{Text: "سبحان الله، والحمد لله، والله أكبر, لا إله إلا الله وحده، لا شريك له، له الملك، وله الحمد، وهوعلى كل شيء قدير.", Count: 100, Source: "رواه الترمذي"},
	},
	"evening": {
		{Text: "اللَّهُ لاَ إِلَهَ إِلاَّ هُوَ الْحَيُّ الْقَيُّومُ لاَ تَأْخُذُهُ سِنَةٌ وَلاَ نَوْمٌ...", Count: 1, Source: "آية الكرسي"},
		{Text: "أمسينا على فطرة الإسلام وكلِمة الإخلاص، ودين نبينا محمد صلى الله عليه وسلم، ومِلَّةِ أبينا إبراهيم، حنيفاً مسلماً، وما كان من المشركين.", Count: 1, Source: "رواه أحمد"},
		{Text: "رضيت بالله ربا، وبالإسلام دينا، وبمحمد صلى الله عليه وسلم نبياً.", Count: 3, Source: "رواه أصحاب السنن"},
		{Text: "اللهم بك أمسينا، وبك أصبحنا، وبك نحيا، وبك نموت، وإليك المصير.", Count: 1, Source: "رواه أصحاب السنن"},
		{Text: "لا إله إلا الله وحده، لا شريك له، له الملك، وله الحمد، وهو على كل شيء قدير.", Count: 1, Source: "رواه البزار والطبراني"},
		{Text: "يا حيُّ يا قيوم برحمتك أستغيثُ، أصلح لي شأني كله، ولا تَكلني إلى نفسي طَرْفَةَ عين أبدًا.", Count: 1, Source: "رواه البزار"},
		{Text: "اللهم أنت ربي، لا إله إلا أنت، خلقتني وأنا عبدُك, وأنا على عهدِك ووعدِك ما استطعتُ...", Count: 1, Source: "سيد الاستغفار"},
		{Text: "اللهم فاطر السموات والأرض، عالم الغيب والشهادة، رب كل شيء ومليكه...", Count: 1, Source: "رواه الترمذي"},
		{Text: "أمسينا وأمسى الملك لله، والحمد لله، لا إله إلا الله وحده لا شريك له...", Count: 1, Source: "رواه مسلم"},
		{Text: "اللهم إني أسألك العفو والعافية في الدنيا والآخرة...", Count: 1, Source: "رواه أبو داود"},
		{Text: "بسم الله الذي لا يضر مع اسمه شيء في الأرض ولا في السماء، وهو السميع العليم.", Count: 3, Source: "رواه أصحاب السنن"},
		{Text: "أعوذ بكلمات الله التامَّات من شر ما خلق.", Count: 3, Source: "رواه مسلم"},
		{Text: "اللهم عافني في بدني، اللهم عافني في سمعي، اللهم عافني في بصري...", Count: 3, Source: "رواه أبو داود"},
		{Text: "قراءة سور: الإخلاص، والفلق، والناس.", Count: 3, Source: "رواه الترمذي"},
		{Text: "حسبي الله لا إله إلا هو عليه توكلت وهو رب العرش العظيم", Count: 7, Source: "رواه أبو داود"},
		{Text: "اللهم إني أمسيت أُشهدك، وأُشهد حملة عرشك، وملائكتك وجميع خلقك...", Count: 4, Source: "رواه أبو داود والترمذي"},
		{Text: "لا إله إلا الله وحده، لا شريك له، له الملك، وله الحمد، يحيي ويميت، وهو على كل شيء قدير.", Count: 10, Source: "رواه ابن حبان"},
		{Text: "سبحان الله وبحمده.", Count: 100, Source: "رواه مسلم"},
		{Text: "أستغفر الله.", Count: 100, Source: "رواه ابن أبي شيبة"},
		{Text: "سبحان الله، والحمد لله، والله أكبر, لا إله إلا الله وحده...", Count: 100, Source: "رواه الترمذي"},
	},
	"study": {
		{Text: "اللهم لا سهل إلا ما جعلته سهلاً، وأنت تجعل الحزن إذا شئت سهلاً.", Count: 1, Source: "دعاء الاستفتاح"},
		{Text: "رب اشرح لي صدري ويسر لي أمري واحلل عقدة من لساني يفقهوا قولي.", Count: 1, Source: "طه:25-28"},
		{Text: "اللهم إني أستودعك ما قرأت وما حفظت وما تعلمت فرده عند حاجتي إليه.", Count: 1, Source: "دعاء الحفظ"},
		{Text: "يا حي يا قيوم برحمتك أستغيث، أصلح لي شأني كله ولا تكلني إلى نفسي طرفة عين.", Count: 1, Source: "دعاء الكرب"},
	},
}

// AthkarCategories 合法场景名，顺序即展示顺序
var AthkarCategories = []string{"morning", "evening", "study"}

// AthkarService 记诵清单与点数：每条的已诵遍数按天持久化
type AthkarService struct {
	container *state.Container
}

func NewAthkarService(container *state.Container) *AthkarService {
	return &AthkarService{container: container}
}

func ValidAthkarCategory(cat string) bool {
	_, ok := athkarData[cat]
	return ok
}

func (s *AthkarService) List(category string) []model.DhikrItem {
	return athkarData[category]
}

type athkarCounts struct {
	Date   string         `json:"date"`
	Counts map[string]int `json:"counts"` // "category:index" → 已诵遍数
}

func (s *AthkarService) loadCounts() athkarCounts {
	today := time.Now().Format("2006-01-02")
	var c athkarCounts
	if !s.container.LoadDoc(store.KeyAthkarCounts, &c) || c.Date != today || c.Counts == nil {
		return athkarCounts{Date: today, Counts: map[string]int{}}
	}
	return c
}

// Counts 某场景下每条的已诵遍数（按下标），隔天自动清零
func (s *AthkarService) Counts(category string) map[int]int {
	c := s.loadCounts()
	out := map[int]int{}
	for i := range athkarData[category] {
		if v, ok := c.Counts[fmt.Sprintf("%s:%d", category, i)]; ok {
			out[i] = v
		}
	}
	return out
}

// Increment 给某条记一遍，封顶到目标遍数，返回记完后的值
func (s *AthkarService) Increment(category string, index int) (int, bool) {
	items, ok := athkarData[category]
	if !ok || index < 0 || index >= len(items) {
		return 0, false
	}
	c := s.loadCounts()
	key := fmt.Sprintf("%s:%d", category, index)
	if c.Counts[key] < items[index].Count {
		c.Counts[key]++
	}
	s.container.SaveDoc(store.KeyAthkarCounts, c)
	return c.Counts[key], true
}

// Reset 清空某场景当天的全部计数
func (s *AthkarService) Reset(category string) {
	c := s.loadCounts()
	for i := range athkarData[category] {
		delete(c.Counts, fmt.Sprintf("%s:%d", category, i))
	}
	s.container.SaveDoc(store.KeyAthkarCounts, c)
}
