// Package wordlist embeds the fixed 2048-word list used to encode
// wordpass identifiers. The list is sorted ascending so identifier
// parsing can binary-search it; never reorder or resize it without a
// format version bump, since the word's index is part of the wire
// identifier.
package wordlist

// Words is the sorted list of 2048 candidate words. Index i encodes
// value i in a wordpass.Identifier.
var Words = [2048]string{
	"bafraish", "baifeat", "baigreang", "baikair", "bainee", "baiquaish", "baiquesh", "baitrul",
	"basnees", "bawoud", "bealock", "beamom", "beanoom", "beasta", "bedo", "beegrim",
	"beemaint", "beepeel", "beerint", "beespi", "besni", "bethom", "bewea", "bidait",
	"biglash", "bisnin", "bistoont", "bitroos", "blachap", "blafee", "blaflaid", "blaiclu",
	"blaicrir", "blaidro", "blaiheash", "blaihop", "blaisoul", "blalaim", "blaprur", "blasap",
	"blazet", "bleablount", "bleabroud", "bleadesh", "bleanoor", "bleaping", "bleapoom", "bleatai",
	"blebreeck", "bleching", "blecre", "bleebrush", "bleecheep", "bleedrush", "bleefou", "bleesna",
	"blefrouck", "blegleep", "bleglou", "bleglout", "bleplung", "bliflat", "blimup", "bliroop",
	"blispoont", "blocil", "blodrain", "blogroon", "blojeesh", "blone", "bloobraint", "bloocain",
	"bloothis", "blooza", "bloozeesh", "bloret", "blouboup", "bloufeck", "bloufrush", "bloufum",
	"bloukeant", "blouprear", "blousnel", "blouzeeng", "blouzin", "blowaing", "blubloon", "blufres",
	"blusnea", "blutheat", "bluvit", "bluzet", "bobraick", "boflat", "bogam", "boobreep",
	"boodren", "booloos", "booneal", "boosnock", "boosont", "boowen", "boowus", "boplot",
	"bopoup", "bosned", "bostul", "boucrud", "bougrous", "bracosh", "braibred", "braifram",
	"braifut", "braigaick", "braispaick", "braispoop", "braithoo", "brastont", "breagom", "breashil",
	"breaspeang", "brebreet", "bredroul", "breechoom", "breecluck", "breeflap", "breefreep", "breekaim",
	"breenoon", "breequed", "brespeap", "bretrear", "bretring", "bretud", "brifush", "brikus",
	"brimit", "briswack", "broflup", "brolant", "brooba", "brooblal", "broocang", "brooreet",
	"broozack", "broslish", "broujat", "broukail", "brouzeant", "browip", "brufosh", "brugas",
	"bruhu", "bruhunt", "brupran", "brusna", "bruthead", "brutrent", "budrar", "bufleal",
	"bugeas", "buglunt", "bunoup", "buthe", "buthosh", "butool", "cabrir", "cacais",
	"cadrouck", "cahoos", "caipreck", "caispi", "caiteet", "caithot", "caitot", "caizouck",
	"camant", "casain", "casleeng", "caspid", "cazing", "ceakeep", "ceasheel", "ceasur",
	"ceatong", "ceatrait", "cebaish", "cecous", "cedrout", "ceebing", "ceehit", "ceehot",
	"ceeming", "ceeprid", "ceewead", "cegaick", "cehut", "cenim", "cepish", "cesnoos",
	"cespush", "cetuck", "chahaip", "chaiclour", "chaicrus", "chaifeck", "chaifla", "chaiplash",
	"chaiprai", "chairaint", "chaisesh", "chaiswoun", "chakock", "chasheed", "chasneng", "chaswum",
	"cheabas", "cheamoup", "cheawi", "cheeflen", "cheegeap", "cheegleesh", "cheeprais", "chegrom",
	"chequol", "cheroong", "chesnesh", "chestous", "cheveem", "chewang", "chiboosh", "chibreant",
	"chiclaish", "chiweep", "chiwoosh", "chofreat", "choge", "chomeem", "choocheent", "choodont",
	"choodoud", "chooflair", "choopod", "choplaip", "choquoock", "chosweang", "chosweed", "chotat",
	"choucrais", "choudrel", "choufish", "choumen", "chousleal", "chousour", "chovair", "chowee",
	"chuchait", "chucloo", "chugea", "chuspis", "cicroock", "cidash", "cinair", "cirail",
	"cispount", "cistosh", "citead", "ciwit", "ciwoop", "clafleent", "claithout", "claprai",
	"claquoop", "claswent", "cleacleack", "cleacreen", "cleasil", "cleaslaish", "cleefen", "cleehum",
	"cleeprean", "cleesnaip", "cleethet", "cleplum", "clesnaick", "clesoong", "clewip", "clezen",
	"clicheem", "cliglush", "cligro", "clijoont", "cliplas", "clisain", "cliseed", "clislair",
	"clistant", "clistean", "cloglaid", "clogream", "clojep", "clomaish", "cloobaing", "cloocan",
	"cloodroom", "closweel", "clotrat", "cloufon", "clouglo", "cloushead", "clousler", "clouspean",
	"clouwong", "clovip", "clozed", "clufleep", "clukock", "clunick", "clureal", "cluseat",
	"cluzash", "codeas", "cograing", "cooblees", "coocroot", "coodeeng", "coodrar", "coogad",
	"coopleat", "coorant", "cooshain", "cooshool", "coosnour", "coosteesh", "coosteng", "cosha",
	"cospas", "cothout", "couchee", "coudick", "couflouck", "coujoon", "couloud", "couteen",
	"cozees", "craflud", "craibram", "craigat", "craistash", "craivoong", "crashain", "crasloop",
	"craswar", "cratos", "creaces", "creafrish", "creamoot", "creaplaint", "creatrem", "credret",
	"creegop", "creemem", "creestes", "crejoock", "creteeck", "crethish", "crezim", "crideer",
	"crifais", "crigul", "crimat", "cripash", "cripleant", "crisweeck", "crocler", "crogeen",
	"croja", "crolus", "cromoon", "croocrot", "croomeel", "crooquoos", "croothaip", "croshees",
	"croslock", "crospeep", "crougid", "crouplaing", "crouquil", "crouroor", "crouswaish", "crouswean",
	"cruchait", "cruchunt", "crudraid", "crudreang", "crugrol", "cucead", "cuglouck", "cujean",
	"culep", "cuswes", "dahus", "daichaid", "daiplot", "daiplup", "daiquoock", "daislool",
	"daithem", "dakis", "dalunt", "deaboo", "deagam", "deakoun", "deazal", "deege",
	"deenea", "deepleesh", "deetrair", "deewont", "demoosh", "deples", "detreas", "devosh",
	"dicloup", "didront", "difrup", "disposh", "doglees", "dokoock", "doofreet", "doofrum",
	"doofrunt", "dooheas", "doomear", "doomop", "doospoos", "dosoom", "dostunt", "doswang",
	"doubrar", "douflil", "douquish", "dourail", "dracint", "dracros", "draibeent", "draicosh",
	"draigreng", "drairet", "drapred", "drasteet", "drathea", "dreaclup", "dreacren", "dreaflai",
	"dreafrount", "dreefleas", "dreeglool", "dreeseed", "dreetreck", "dreezait", "drefleang", "drefleel",
	"dregleeck", "dregroont", "drereant", "drigreal", "drijaip", "driprul", "drirar", "driteesh",
	"driwaish", "driweash", "drizair", "droblash", "drobleat", "drola", "dromaid", "droofres",
	"droogrit", "droolo", "drooprain", "drooslent", "droowul", "dropleel", "drosup", "drotock",
	"droufint", "droujot", "droukud", "drourom", "drouspoot", "droutais", "droutraip", "drubrear",
	"drukoun", "druwain", "ducleer", "ducret", "dudrunt", "duflan", "dufleesh", "dujoos",
	"dunim", "dupack", "duproum", "dusash", "duvu", "duweer", "faglont", "fagree",
	"faicash", "faifai", "faifeck", "faigar", "faijick", "faikair", "faikeet", "faiquush",
	"faithaick", "fajaick", "fajea", "faloom", "faquint", "favung", "feabeang", "feadruck",
	"feafup", "feahush", "fealad", "fealail", "feaveas", "feazum", "feebi", "feelong",
	"fenum", "fenus", "fespoong", "fevea", "fibloung", "ficoosh", "figlup", "fiquun",
	"fiwoor", "fladree", "flaicees", "flaiclint", "flaigesh", "flaikoud", "flaivool", "flaqueat",
	"flastin", "fleableed", "fleadeed", "fleajead", "fleataip", "flecack", "flechint", "fleeplent",
	"flejur", "flenean", "flesnair", "fligeant", "flinoock", "fliproum", "flitret", "flochet",
	"flodraish", "flofrous", "flogap", "floocos", "floopraim", "floorash", "flooroong", "floosoor",
	"flootor", "flosten", "flothair", "flotrel", "flouclaip", "floudea", "flouluck", "flouquor",
	"flouspeash", "floutreack", "floutreem", "fluchap", "flucid", "flufraing", "flusheat", "focruck",
	"foken", "fomot", "foobroum", "foojoosh", "fooroud", "fooshaish", "fooshot", "foowul",
	"fopa", "foswees", "foubraing", "fouclock", "foucror", "foucru", "fougea", "fouhool",
	"foupent", "fouswick", "fouzoud", "frachoop", "fracrang", "fraibrer", "fraicoum", "fraigra",
	"fraihesh", "fraimuck", "fraistee", "fraithuck", "fraleang", "frapir", "fraqueck", "fraswem",
	"frathut", "frawem", "freafaim", "freafrong", "freagri", "freajar", "freakour", "freazeas",
	"freazet", "freebep", "freecheen", "freecram", "freefosh", "freefrount", "freeplung", "freepur",
	"freeril", "freesou", "freetos", "freewea", "freflar", "frefloock", "frefrop", "frehur",
	"freswir", "frewur", "friblem", "friflis", "friglar", "friko", "frineant", "friprouck",
	"frisai", "frishour", "fritoul", "frodoo", "frogroud", "frojen", "froobeang", "froogread",
	"frookaish", "frootheet", "froplail", "froshoom", "froslil", "frosou", "frotril", "frouglaint",
	"frougreep", "frouquock", "froutrout", "frouwear", "frucrur", "frugleeck", "frukeent", "frulo",
	"fublim", "fucrip", "fucru", "futrash", "gaclil", "gaiglil", "gaigroot", "gaipru",
	"gaiquoop", "gaishour", "gaislouck", "gaste", "gazeng", "geamant", "geanoo", "geaplash",
	"geaplur", "geasweck", "geazeam", "geceant", "gechir", "geebroud", "geedu", "geefeang",
	"geeneeck", "geepeat", "geeslol", "geeswea", "geflent", "gesool", "geswun", "gicrash",
	"gikop", "gimeent", "gisleam", "gislud", "gistil", "gladaing", "glaichaick", "glaihair",
	"glaikoung", "glaiman", "glaiploush", "glaiprong", "glaizel", "glaloont", "glapream", "glapruck",
	"glaslou", "glasnair", "glawood", "gleagring", "gleagu", "gleanack", "gleatam", "gleecel",
	"gleeclur", "gleeshung", "gleetreng", "glefleeng", "glesta", "glethoum", "gligreal", "globlol",
	"glofroont", "glohuck", "glomud", "gloochout", "gloodam", "gloquent", "gloushant", "glouspaid",
	"glouspeng", "gluceant", "glufep", "glusleed", "gluswoos", "gluveck", "gluwash", "goboot",
	"goclead", "godrent", "goohep", "goolad", "gooquim", "gooquu", "gooreeng", "gooslouck",
	"gopleas", "gorean", "goubea", "goublosh", "gouclol", "gouship", "gouvit", "gragroung",
	"graiclus", "graiprout", "graisleat", "graizant", "greaceck", "greagrain", "greamot", "greaquent",
	"greaspear", "greblir", "greboos", "grecrel", "greedoor", "greefrush", "greegluck", "greejeeng",
	"gretoud", "grifai", "grital", "groclut", "grooclup", "groofruck", "grooglesh", "groopling",
	"groosnai", "grorour", "grosneant", "grothoud", "groubroum", "groudrel", "groujil", "grousnet",
	"grouswaick", "grutoop", "gubleeng", "gubrick", "guloud", "gushaid", "haiblesh", "haibris",
	"haifos", "haifus", "haigleen", "haigung", "hanees", "haproot", "headol", "headoud",
	"heaquish", "heatroup", "hebat", "hedruck", "heeblont", "heebreack", "heeprit", "heequeet",
	"heetrus", "heevir", "heflil", "heseesh", "hicloop", "hifleack", "hifrom", "hipai",
	"hiquout", "hivit", "hiwuck", "hizeck", "hofount", "hogeas", "hokes", "honip",
	"hoochu", "hoocrash", "hoosnal", "hoostoup", "houboock", "houbush", "houchas", "houcin",
	"hounoot", "houque", "houreck", "houswant", "houtro", "humud", "jahoop", "jaiblee",
	"jaicaing", "jaidroun", "jaifid", "jaifroup", "jaimeel", "jaiwud", "jashount", "jaslap",
	"jawi", "jeabrai", "jeaclaint", "jeafu", "jeaneck", "jeaslen", "jeasner", "jeasweack",
	"jeateeng", "jeches", "jedrar", "jeegreash", "jeehul", "jemot", "jifish", "jihunt",
	"jilou", "jivesh", "jiweack", "jizain", "jobraish", "joflool", "jojeer", "jooblen",
	"joogloong", "joohod", "joostor", "joothop", "jopuck", "jostout", "joubrount", "joucling",
	"joudrous", "joumad", "jouquoum", "julair", "juplish", "jurick", "jusled", "kabront",
	"kacait", "kacraip", "kadait", "kaflead", "kafrip", "kagleep", "kagru", "kaidol",
	"kaigrat", "kaihoon", "kaireesh", "kaiteas", "kavair", "keaboock", "keahear", "keapreap",
	"keeflap", "keefraick", "keekan", "keelap", "keeprunt", "keequal", "keezaint", "keglar",
	"keheeng", "kelou", "kemout", "kenit", "kenoock", "keprail", "kesees", "kevint",
	"kicait", "kichood", "kigleesh", "kilun", "kiroont", "kiroush", "koblais", "koceash",
	"kochint", "kocoung", "kocun", "komud", "konoon", "kospou", "koublout", "koudash",
	"kouflur", "kouprock", "kouslean", "kouthais", "kouweap", "kuquaim", "kusleep", "kuwaid",
	"lacled", "laikung", "laisnool", "laitrail", "laploush", "lapoop", "lazad", "leadish",
	"leadroup", "leapreal", "leasweent", "leatroom", "leaweant", "lebair", "ledrum", "leegleesh",
	"leegris", "leeno", "leesnou", "lehent", "lelour", "lemas", "lepunt", "liho",
	"linoul", "lislear", "liswea", "lited", "livaick", "loclouck", "loglur", "lokeas",
	"lolead", "loling", "lomeesh", "looboum", "loocloot", "looshee", "loshaid", "lotheang",
	"loudea", "loudem", "lougraick", "louresh", "lousi", "louswood", "louthean", "louwoush",
	"ludreen", "lugeash", "lumoot", "lusnos", "lusosh", "mablel", "mabroom", "magock",
	"mahep", "maibraim", "maifru", "maiglon", "maivi", "mameap", "mapoong", "maroock",
	"mazea", "meaplaick", "mearour", "meebleant", "meegraim", "meeshead", "meesnack", "meetol",
	"meetrin", "meewent", "megid", "miflir", "migor", "mijuck", "milon", "mitim",
	"mitreent", "mivour", "mocosh", "moocont", "moolead", "moosheat", "mooswour", "mostail",
	"moubint", "mougrap", "moushot", "moushunt", "mouthint", "mowim", "mupred", "nafeed",
	"naibeesh", "naiclul", "naikoup", "naisaing", "naiswa", "naizoum", "nakeal", "naplat",
	"naspor", "nateem", "nazais", "neachu", "neafrout", "neageack", "neakour", "neclong",
	"neebrup", "neeflaint", "neegroush", "neeswim", "neeswoos", "negloosh", "nepop", "nesho",
	"nesish", "niblor", "nichick", "nifack", "nivun", "nonoop", "noodaick", "noodint",
	"noodrid", "noonee", "noonil", "noothais", "noozom", "nopal", "noshod", "nothud",
	"notrosh", "noucos", "nourash", "noustount", "nowon", "nuglot", "nulaim", "nunoup",
	"pabid", "padock", "pagrip", "paheash", "paiham", "paisouck", "paistint", "paitet",
	"pajon", "paplaint", "pasloop", "pateen", "pawait", "peacheet", "peacom", "peacon",
	"peafleant", "peajick", "peajoom", "peamas", "peaspod", "peathip", "pebood", "pebreap",
	"peeblil", "peegrosh", "peeshou", "peethour", "pefaim", "pegrou", "peslail", "peswum",
	"petou", "petrot", "piba", "picrean", "pihoom", "piques", "pithash", "placleer",
	"plaifeen", "plaiquear", "plaisi", "plaislot", "plaisneang", "plaitim", "plaizil", "plajul",
	"plaploum", "plaproud", "plaquai", "plathour", "pleableck", "pleacreel", "pleajoor", "pleapleas",
	"pleased", "pleasneet", "pleavul", "pleebit", "pleeblom", "pleedrod", "pleespal", "pleespint",
	"pleeveent", "plefroont", "plegroon", "plereed", "plestep", "plestoush", "plibroush", "plichees",
	"plikoock", "pliploong", "pliser", "plislal", "plizee", "plocrop", "plocut", "plogleet",
	"plooblang", "plooblunt", "plooboon", "ploocom", "ploojoop", "ploolos", "ploopesh", "ploopren",
	"ploosim", "ploospool", "plooswel", "ploovul", "plothen", "plouhan", "plouquo", "ploureck",
	"pluchis", "pluclit", "plucreen", "pluflaim", "plulis", "pluzop", "pocleack", "pohan",
	"pomeesh", "poochop", "poocrum", "poodreack", "poojick", "poosheent", "poosloosh", "pootet",
	"pooweeng", "posnim", "postash", "posteeck", "pouheem", "poumu", "pouner", "pouspeat",
	"pracroo", "pradrar", "pragreesh", "prahul", "praisluck", "praiweep", "praket", "praprount",
	"prashash", "prastoud", "prawees", "preagont", "preapleck", "preaploo", "precleet", "precluck",
	"preechid", "preedod", "preefros", "preeleed", "preeplaip", "preeshum", "prefrain", "prepluck",
	"presheer", "preswil", "pretea", "pribleng", "prilum", "probroom", "procrait", "pronot",
	"prooflu", "proothoum", "proozack", "proreen", "proubood", "prouchesh", "prouflosh", "prougleat",
	"prougleel", "prousleel", "prouwead", "prouwul", "pruchad", "prucrais", "prukaip", "prumesh",
	"prushop", "pruspeas", "pucaick", "pucheent", "puglad", "pugrouck", "quablack", "quaidrick",
	"quaiglair", "quaiglos", "quaijim", "quaimur", "quainer", "quaiwean", "quanoud", "quaploun",
	"quaqueen", "quasear", "quaslit", "quaspop", "queahom", "queakout", "quealaish", "queamaid",
	"queapleck", "queaswep", "queatosh", "quechouck", "queclol", "queebeack", "queegrood", "queehud",
	"queejeam", "queepler", "quefloung", "quezud", "quicen", "quidoud", "quifuck", "quiglees",
	"quigrip", "quinoon", "quithet", "quivel", "quobont", "quodaish", "quokeck", "quoobrosh",
	"quooflais", "quoofroum", "quooglol", "quooprin", "quooque", "quooquoung", "quoothain", "quostat",
	"quoucoun", "quougrip", "quoukeck", "quoumong", "quouspes", "quucan", "quucro", "quudreat",
	"quuroung", "quutoom", "raclun", "racuck", "raichoop", "raijesh", "raipoock", "raiprint",
	"raishoo", "raithen", "raleack", "raplan", "raquour", "rasnush", "raspol", "reacreat",
	"reacresh", "reafeem", "reafoung", "reakick", "reebang", "reebrean", "reecaick", "reefeent",
	"reefrang", "reefroung", "reemead", "reeswaid", "reetor", "reflup", "rehais", "ridroush",
	"rifraish", "rigoun", "rijir", "risap", "risush", "ritrud", "robrint", "roce",
	"rolush", "romoos", "rooclo", "roocraish", "roostock", "roosweeck", "roraid", "roslaid",
	"rospeer", "rothu", "rouceas", "rouquus", "roushead", "rousnang", "rousnee", "rousnong",
	"rozep", "ruclaick", "rufling", "ruhaish", "rujush", "rusaish", "ruspom", "saicroo",
	"saidresh", "sainout", "saispot", "sajaish", "sarash", "sastaick", "seabap", "seablais",
	"seacheen", "searack", "seblaip", "seechear", "seesush", "seeval", "sefaint", "sekeel",
	"selaing", "seloun", "shaglain", "shaifoul", "shaigout", "shairon", "shaistoo", "shamen",
	"shaqueas", "shateam", "shathash", "shatheam", "sheasheesh", "sheasit", "sheasnoosh", "sheasteer",
	"sheathail", "shecleel", "sheechoush", "sheepim", "sheequir", "sheeseant", "sheesoont", "sheespunt",
	"shefream", "shepat", "sheshaick", "sheshum", "shesnun", "shethack", "shiclosh", "shicoud",
	"shidreem", "shiseel", "shoclosh", "shocrop", "shofam", "shogloun", "shokeash", "shoopus",
	"shooslesh", "shoozud", "shoread", "shoslep", "shoushail", "shufaim", "shufang", "shugreas",
	"shugroung", "shuheang", "shuneant", "shuneeck", "shusam", "sichont", "sijut", "siwor",
	"sladush", "slagil", "slaicong", "slaithoum", "slaiwoon", "slanool", "sleabrer", "sleadrum",
	"sleapaim", "sleaquit", "sleasleel", "sledreash", "sleeceack", "sleejead", "sleejool", "sleemong",
	"sleesles", "sleethais", "slefreeck", "slehung", "slerit", "slesid", "sleslem", "slicas",
	"sliflem", "sligosh", "slimeash", "slisping", "sliweant", "slobim", "slobroosh", "slocoul",
	"slodrem", "slojol", "slooprin", "slootread", "slothouck", "sloubleam", "sloublir", "slouflung",
	"slouhoont", "sloushin", "snablin", "snachem", "snacresh", "snacush", "snaiclep", "snaifloont",
	"snaigain", "snairer", "snaiwad", "snaizis", "snawis", "sneaclip", "sneadul", "sneajed",
	"sneamool", "sneapod", "sneasneap", "sneaweer", "sneazash", "sneedop", "sneesean", "sneeswaip",
	"sneethuck", "snefrosh", "snejeed", "sneloum", "snethar", "snibleng", "snifis", "snikeash",
	"snikont", "snilo", "sniplair", "snisoul", "snitreck", "sniwum", "snodroop", "snojea",
	"snoma", "snoobrang", "snoobrit", "snooching", "snoocrear", "snoojint", "snooleack", "snoshas",
	"snosnool", "snosping", "snotheeng", "snotis", "snoucrea", "snouflash", "snoutun", "snoveet",
	"snuchi", "snuflut", "snuglad", "snuhout", "snulir", "snusloung", "snutool", "snutroum",
	"sobeem", "sobrel", "soocou", "soofleang", "soogeas", "soomel", "sooquang", "soored",
	"soorol", "soplal", "soshol", "soubloup", "sousheesh", "sousit", "sousnut", "spafloong",
	"spafril", "spaigount", "spaigrount", "spaikang", "spaiqueer", "spairus", "spaisloong", "spaiswoop",
	"spaqueap", "spathean", "spazeal", "speacheel", "speachip", "speadraid", "speagrick", "speanoot",
	"speasaint", "speasoul", "speawit", "spedat", "speeblool", "speethoor", "spehoont", "sperunt",
	"spesent", "speshon", "spiblam", "spimoos", "spirash", "spizup", "spobor", "spofro",
	"spoocais", "spoogair", "spoohoul", "spoosnaick", "spoosneck", "spoosteed", "spootrout", "spoquouck",
	"spostour", "spouglim", "spoulod", "spouswat", "spuchait", "stagead", "stagim", "staras",
	"steaci", "steahea", "steaslop", "steaslun", "steaswack", "stechun", "stedel", "steeclud",
	"steefloo", "steefrack", "steefrom", "steegleack", "steespoun", "stequead", "stibail", "sticroud",
	"stivood", "stofreash", "stonunt", "stoojeck", "stoopeat", "stoosu", "stootoush", "stoshu",
	"stospat", "stoswoock", "stotait", "stourir", "stouthai", "stujeas", "stupesh", "stupreck",
	"stureer", "stusheas", "suchool", "suqueng", "sushick", "sushud", "suswour", "sutreng",
	"swaibrim", "swaibrour", "swaiquin", "swaisneesh", "swaistup", "swaitaint", "swaitrant", "swaizoom",
	"swanit", "sweaflosh", "swecror", "sweegleack", "sweejeng", "sweeloong", "sweeprit", "sweeral",
	"sweevol", "swegeem", "swesteeng", "swifled", "swikoum", "swipur", "swobos", "swomang",
	"swoodrash", "swoofer", "swoofloun", "swoogis", "swoothu", "swoovean", "swoozad", "swospeeng",
	"swoswon", "swoubeep", "swouchoup", "swouclead", "swoudeal", "swoukul", "swoumash", "swouprad",
	"swouros", "swubloon", "swudaick", "swuloush", "swuvi", "tabrock", "taidret", "taidri",
	"taihil", "tailan", "taiswap", "taiswoud", "tastas", "tatrad", "teaban", "teashead",
	"teasnung", "teatrid", "teawont", "teeboung", "teelep", "teepit", "teeploot", "teeshoum",
	"teetaint", "tegloop", "tequoun", "terul", "thachush", "thaibap", "thaiclit", "thaikee",
	"thaitar", "theacat", "theacit", "theafrim", "theageel", "theawock", "theebrut", "theegreeck",
	"theemour", "theesneep", "theestad", "thefleed", "thenead", "these", "thetrap", "thetreent",
	"thiga", "thigreed", "thikoong", "thilaish", "thiplosh", "thiswid", "thobleesh", "thocran",
	"thofel", "thoglean", "thojaick", "thoobroung", "thoocum", "thoofleck", "thoofrum", "thoosnoud",
	"thoosos", "thoowet", "thoplet", "thosoot", "thostent", "thouclol", "thougling", "thougrong",
	"thouhear", "thoutraing", "thufror", "thutreap", "tigoul", "tikeed", "tikip", "tithing",
	"toche", "toclees", "tocloosh", "tofrol", "tohaid", "toogous", "toohaing", "tooslean",
	"toothas", "toovil", "touclou", "toudreat", "toudrent", "toufee", "toupou", "touproo",
	"touthuck", "trabru", "traclot", "tradruck", "traibes", "traiprick", "traislais", "traisloul",
	"trajour", "treadoor", "treafloush", "treashack", "treasleang", "treaspush", "treebres", "treedrint",
	"treehoon", "treenam", "treeprish", "treesni", "treesti", "treetru", "tregleer", "treprop",
	"tribleent", "trifung", "trilee", "tripai", "trislad", "trislit", "trivant", "trizick",
	"trobleer", "trojint", "trojool", "troodral", "trooflap", "troogrush", "troosneack", "troosnoong",
	"troosnot", "trooswosh", "trosneam", "troucesh", "trouchoun", "troudap", "troufai", "trouflong",
	"trouget", "trouglom", "trouploung", "troupror", "troutount", "trouzur", "truglis", "trumesh",
	"tugror", "tuplee", "tusnee", "vablam", "vachoud", "vadel", "vagreet", "vaidaick",
	"vaiging", "vaigrud", "vaikom", "vaiseas", "vaispoud", "vaiweem", "vapruck", "vaspack",
	"vaswep", "vaswoos", "vatheack", "vavos", "veachick", "veadroum", "veclet", "vedack",
	"veeblat", "veeswop", "veetood", "vefroo", "veter", "vetrout", "vevoush", "vewear",
	"viflant", "vipeeck", "visnea", "viswem", "vobloor", "vobool", "vogoong", "vomeel",
	"vomosh", "voocleash", "voofack", "voojil", "voojou", "vooket", "vooko", "vooslead",
	"voosteng", "vosteat", "votun", "voubreer", "voucrap", "vouhaid", "voujoosh", "voumop",
	"voumoul", "vouplung", "voupreal", "vucroos", "vufout", "vuplor", "vusneet", "vustail",
	"wachoush", "waibam", "waicleal", "waiflil", "waiplong", "waisneeck", "waisosh", "waistount",
	"wakoung", "wamesh", "washoun", "wateet", "wavaid", "weacleng", "weahee", "weapuck",
	"wearair", "weasoup", "weavick", "webeack", "weebroosh", "weeplo", "wemom", "wepoun",
	"weshoo", "wespot", "wipreent", "witem", "witris", "wocreas", "wocrus", "wohuck",
	"wokin", "woloont", "woobap", "woogrunt", "wootroun", "woozean", "wotring", "wougreack",
	"wouplent", "wouploush", "wouspool", "wucloul", "wuglan", "wulel", "wunoul", "wuprom",
	"wuweal", "zabron", "zaclaick", "zadep", "zadres", "zaflul", "zaibron", "zaiflar",
	"zaihaish", "zaihen", "zaikang", "zaipla", "zaipoul", "zaiquol", "zaisneent", "zaizor",
	"zapleal", "zaswish", "zeacack", "zeagrel", "zeamour", "zeeheash", "zeekel", "zeekut",
	"zeepas", "zeetir", "zefeem", "zegreck", "zemish", "zeplosh", "zeshir", "zibas",
	"zibou", "ziceas", "ziglouck", "zihem", "zishoot", "ziswaick", "zizoong", "zoblad",
	"zoblour", "zogou", "zoopous", "zootoun", "zoozent", "zopreang", "zoquip", "zotreer",
	"zougrant", "zouprint", "zucreel", "zuhour", "zukeng", "zukoor", "zusaish", "zuthush",
}
