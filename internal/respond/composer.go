// Package respond renders the canned educational responses the rule
// pipeline serves when a topic matches. Composition is pure: given the same
// topic and message the output is always byte-identical, which is what makes
// the rendered strings safe to cache and replay.
package respond

import "github.com/jeesuva/companion/backend/internal/analysis/topic"

// Compose renders the template for a routed topic. Only the pain topic
// inspects the message again, to pick the severe variant.
func Compose(t topic.Topic, message string) string {
	switch t {
	case topic.Pain:
		if topic.SeverePain(message) {
			return severePainTemplate
		}
		return painTemplate
	case topic.HeatingPad:
		return heatingPadTemplate
	case topic.Herbal:
		return herbalTemplate
	case topic.School:
		return schoolTemplate
	case topic.Myths:
		return mythTemplate
	case topic.MentalHealth:
		return mentalHealthTemplate
	case topic.Bleeding:
		return bleedingTemplate
	case topic.Harassment:
		return harassmentTemplate
	case topic.Affordability:
		return affordabilityTemplate
	case topic.Isolation:
		return isolationTemplate
	case topic.PCOS:
		return pcosTemplate
	case topic.Endometriosis:
		return endometriosisTemplate
	case topic.CycleTracking:
		return cycleTrackingTemplate
	case topic.Supplements:
		return supplementsTemplate
	case topic.Hygiene:
		return hygieneTemplate
	case topic.Exercise:
		return exerciseTemplate
	case topic.Puberty:
		return pubertyTemplate
	case topic.Emergency:
		return emergencyTemplate
	}
	return ""
}

// The pain, heating-pad and herbal templates keep the original structured
// HTML blocks the web client styles; the rest use lightweight markdown.

const severePainTemplate = `<div class="bot-response">
<div class="response-header">💙 Managing Severe Pain</div>
<p class="response-intro">Severe pain can be really debilitating, and you deserve proper support.</p>

<div class="response-section">
<div class="section-title">🌿 Recommended Steps:</div>
<div class="step-item">
  <div class="step-number">1</div>
  <div class="step-content">
    <strong>Use Jeesuva Heating Pad</strong><br>
    Activate it and apply to your lower abdomen for 20-30 minutes for soothing warmth
  </div>
</div>
<div class="step-item">
  <div class="step-number">2</div>
  <div class="step-content">
    <strong>Take our Herbal Sachet</strong><br>
    Mix with warm water - ginger & Ajwain reduce inflammation naturally
  </div>
</div>
<div class="step-item">
  <div class="step-number">3</div>
  <div class="step-content">
    <strong>Rest & Hydrate</strong><br>
    Give your body the care it needs
  </div>
</div>
<div class="step-item">
  <div class="step-number">4</div>
  <div class="step-content">
    <strong>See a Doctor</strong><br>
    If pain persists or is unusually severe, consult a healthcare provider
  </div>
</div>
</div>

<div class="response-footer">You deserve comfort and healing! 🌿💕</div>
</div>`

const painTemplate = `<div class="bot-response">
<div class="response-header">💕 Managing Period Pain</div>
<p class="response-intro">Period pain is real, and managing it with Jeesuva makes a big difference!</p>

<div class="response-section">
<div class="section-title">✨ Here's what to do:</div>
<div class="step-item">
  <div class="step-number">1</div>
  <div class="step-content">
    <strong>Activate Heating Pad</strong><br>
    Click the metal disc - it works instantly!
  </div>
</div>
<div class="step-item">
  <div class="step-number">2</div>
  <div class="step-content">
    <strong>Apply Warmth</strong><br>
    Place on your lower abdomen for 20-30 minutes
  </div>
</div>
<div class="step-item">
  <div class="step-number">3</div>
  <div class="step-content">
    <strong>Herbal Sachet</strong><br>
    Sip one sachet mixed with warm water
  </div>
</div>
<div class="step-item">
  <div class="step-number">4</div>
  <div class="step-content">
    <strong>Rest</strong><br>
    Take care of yourself when you need to
  </div>
</div>
</div>

<div class="response-highlight">⏰ Our heating pad provides 4-6 hours of comfort!</div>
</div>`

const heatingPadTemplate = `<div class="bot-response">
<div class="response-header">🔥 How Jeesuva Heating Pad Works</div>

<div class="response-section">
<div class="feature-grid">
  <div class="feature-card">
    <div class="feature-icon">👆</div>
    <div class="feature-title">Click the Metal Disc</div>
    <div class="feature-desc">Activates sodium acetate technology instantly</div>
  </div>
  <div class="feature-card">
    <div class="feature-icon">⚡</div>
    <div class="feature-title">Instant Warmth</div>
    <div class="feature-desc">Reaches comfortable warmth immediately</div>
  </div>
  <div class="feature-card">
    <div class="feature-icon">⏰</div>
    <div class="feature-title">Long-Lasting</div>
    <div class="feature-desc">Provides 4-6 hours of soothing heat</div>
  </div>
  <div class="feature-card">
    <div class="feature-icon">🌡️</div>
    <div class="feature-title">Safe Temperature</div>
    <div class="feature-desc">Maintains 40-50°C (never exceeds 52°C)</div>
  </div>
  <div class="feature-card">
    <div class="feature-icon">♻️</div>
    <div class="feature-title">Reusable</div>
    <div class="feature-desc">Works 100+ times!</div>
  </div>
  <div class="feature-card">
    <div class="feature-icon">🎒</div>
    <div class="feature-title">Portable</div>
    <div class="feature-desc">Use anywhere without electricity</div>
  </div>
</div>
</div>

<div class="response-footer">No setup needed. Just pure comfort! 💚</div>
</div>`

const herbalTemplate = `<div class="bot-response">
<div class="response-header">🌿 Jeesuva Herbal Sachets - Natural Healing</div>

<div class="response-section">
<div class="section-title">🌱 What's Inside:</div>
<div class="ingredient-list">
  <div class="ingredient-item">
    <span class="ingredient-name">Ajwain</span>
    <span class="ingredient-benefit">Reduces muscle spasms and cramping</span>
  </div>
  <div class="ingredient-item">
    <span class="ingredient-name">Ginger</span>
    <span class="ingredient-benefit">Anti-inflammatory, reduces pain</span>
  </div>
  <div class="ingredient-item">
    <span class="ingredient-name">Jaggery</span>
    <span class="ingredient-benefit">Replenishes iron</span>
  </div>
  <div class="ingredient-item">
    <span class="ingredient-name">Natural Herbs</span>
    <span class="ingredient-benefit">For menstrual wellness</span>
  </div>
</div>
</div>

<div class="response-section">
<div class="section-title">📋 How to Use:</div>
<div class="usage-steps">
  <div class="usage-step"><span class="step-num">1.</span> Mix one sachet with warm water</div>
  <div class="usage-step"><span class="step-num">2.</span> Sip 2-3 times during your period</div>
  <div class="usage-step"><span class="step-num">3.</span> Feel the natural relief!</div>
</div>
</div>

<div class="response-highlight">✨ All food-grade, zero chemicals! 🍵💚</div>
</div>`

const schoolTemplate = "📚 **YES! You CAN Go to School During Your Period!**\n\n" +
	"💪 **Why Jeesuva is Perfect for School:**\n" +
	"- No electricity needed ✓\n- Works without special setup ✓\n" +
	"- Discreet and portable ✓\n- Lasts through your school day ✓\n\n" +
	"**What to Do:**\n1. Use Jeesuva before school\n2. Concentrate on your studies\n" +
	"3. Excel in exams and activities\n\nYour education is precious! 🌟📖"

const mythTemplate = "✨ **The REAL Truth About Menstruation:**\n\n" +
	"'Menstruation is not a barrier but a badge of might,\n" +
	"They enter temples freely, standing tall in sacred light.'\n\n" +
	"💙 **THE TRUTH:**\n- Your period is a sign of health\n" +
	"- You can enter temples, schools, ALL spaces\n- You are NOT weak or dirty\n" +
	"- You are POWERFUL and WORTHY\n\nOld beliefs that exclude you are wrong! 💪🌈"

const mentalHealthTemplate = "💚 **Your Mental Health Matters**\n\n" +
	"If you're experiencing depression, anxiety, or mood changes, please know:\n" +
	"✓ This is real and treatable\n✓ You deserve professional support\n" +
	"✓ Your feelings are valid\n\n**Please reach out to:**\n- A trusted adult\n" +
	"- School counselor\n- Mental health professional\n- Crisis support (24/7 available)\n\n" +
	"You are worthy of healing! 💙"

const bleedingTemplate = "💙 **Heavy Bleeding & Anemia Need Attention**\n\n" +
	"**Please take action:**\n1. **See a Doctor** - Get blood tests\n" +
	"2. **Eat Iron-Rich Foods** - Spinach, dates, beans\n" +
	"3. **Use Jeesuva** - Herbal sachets help with iron & bleeding\n" +
	"4. **Rest & Hydrate**\n\nYou deserve energy and health! 💚"

const harassmentTemplate = "💙 **If You're Being Bullied - That's NOT Okay**\n\n" +
	"✓ Tell a trusted adult\n✓ Document what's happening\n✓ Know you're NOT alone\n" +
	"✓ Their cruelty is THEIR problem, not yours\n\n**Remember:**\n" +
	"Your period is NORMAL. You are VALUABLE. Bullies are WRONG.\n\n" +
	"You deserve respect and protection! 💪🌈"

const affordabilityTemplate = "💰 **Period Poverty is Real - But Jeesuva is the Solution!**\n\n" +
	"**Why Jeesuva Works:**\n✓ One investment = 100+ uses\n" +
	"✓ Costs LESS than monthly disposables\n✓ No ongoing expenses\n" +
	"✓ Works for YEARS\n\n**Also explore:**\n- School programs\n- NGO support\n" +
	"- Government schemes\n\nYou deserve period care without financial burden! 💚"

const isolationTemplate = "💙 **You Don't Have to Face This Alone!**\n\n" +
	"**Take these steps:**\n1. Talk to a trusted person\n2. Join communities\n" +
	"3. Share your experience\n4. Build your support network\n\n**Remember:**\n" +
	"- Billions of women menstruate\n- Silence breeds shame\n" +
	"- Connection brings healing\n- You deserve sisterhood!\n\n" +
	"When you're ready, reach out! 💖"

const pcosTemplate = "💜 **Understanding PCOS (Polycystic Ovary Syndrome)**\n\n" +
	"**Common Symptoms:**\n✓ Irregular or absent periods\n✓ Excess facial/body hair\n" +
	"✓ Acne and oily skin\n✓ Weight gain (especially belly)\n✓ Hair thinning on scalp\n\n" +
	"**What You Can Do:**\n1. **Lifestyle**: Balanced diet, regular exercise, stress management\n" +
	"2. **Medical**: Birth control pills, insulin medications (consult endocrinologist)\n" +
	"3. **Long-term**: PCOS is manageable with proper care\n\n" +
	"💡 Early intervention improves outcomes! See a specialist for proper diagnosis. 💪"

const endometriosisTemplate = "💙 **Endometriosis: You're Not Alone**\n\n" +
	"**Key Symptoms:**\n⚠️ Extremely painful periods (NOT normal!)\n" +
	"⚠️ Chronic pelvic pain\n⚠️ Pain during/after sex\n" +
	"⚠️ Painful bowel movements during period\n⚠️ Heavy bleeding\n" +
	"⚠️ Difficulty conceiving\n\n**Important:**\n- Diagnosis often delayed 7-10 years\n" +
	"- Severe period pain is NOT normal\n- Laparoscopy is gold standard diagnosis\n" +
	"- Treatment options: hormonal therapy, surgery\n\n" +
	"🏥 See a gynecologist specialist! You deserve proper care. 💚"

const cycleTrackingTemplate = "📅 **How to Track Your Menstrual Cycle**\n\n" +
	"**What to Track:**\n✓ Start date of each period\n✓ Flow (light, medium, heavy)\n" +
	"✓ Symptoms (cramps, mood, etc)\n✓ Cycle length (21-35 days is normal)\n\n" +
	"**Methods:**\n1. **Apps**: Clue, Flo, Period Tracker\n2. **Calendar**: Mark start dates\n" +
	"3. **Journal**: Paper planner\n\n**Benefits:**\n💡 Predict next period\n" +
	"💡 Identify patterns\n💡 Plan activities\n💡 Share data with doctor\n" +
	"💡 Fertility awareness\n\nTracking empowers you! 📊💪"

const supplementsTemplate = "💊 **Supplements for Menstrual Health**\n\n" +
	"**Recommended Supplements:**\n\n1. **Iron** (18mg daily)\n   - Replenishes blood loss\n" +
	"   - Prevents anemia, fatigue\n\n2. **Magnesium** (300-400mg)\n" +
	"   - Reduces cramps by 40%!\n   - Improves mood, sleep\n\n" +
	"3. **B Vitamins** (B6: 50-100mg)\n   - Reduces PMS symptoms\n   - Boosts energy\n\n" +
	"4. **Omega-3** (1000-2000mg)\n   - Anti-inflammatory\n   - Reduces pain\n\n" +
	"5. **Calcium + Vitamin D**\n   - Reduces pain by 40%\n\n" +
	"⚠️ **IMPORTANT**: Always consult your doctor before starting supplements! " +
	"Quality matters - choose reputable brands. 💚"

const hygieneTemplate = "🧼 **Menstrual Hygiene Best Practices**\n\n" +
	"**Product Usage:**\n✓ Pads: change every 4-6 hours\n" +
	"✓ Tampons: change every 4-8 hours (TSS risk!)\n" +
	"✓ Menstrual cups: empty every 8-12 hours\n✓ Period underwear: change daily\n\n" +
	"**Body Care:**\n✓ Wash with mild soap and water\n✓ Wipe front to back always\n" +
	"✓ Avoid scented products (irritation)\n✓ Wear breathable cotton underwear\n" +
	"✓ Change underwear daily\n\n**Disposal:**\n✓ Wrap before disposing\n" +
	"✓ Never flush pads/tampons\n✓ Use disposal bins\n\n" +
	"💙 Period products are a human right! No shame in asking for help. 🌟"

const exerciseTemplate = "💪 **Exercise During Your Period - YES YOU CAN!**\n\n" +
	"**Benefits:**\n✨ Light exercise reduces cramps\n" +
	"✨ Releases natural painkillers (endorphins)\n✨ Improves mood and energy\n" +
	"✨ Reduces bloating\n\n**Recommended:**\n✓ Walking or light jogging\n" +
	"✓ Yoga (restorative poses)\n✓ Swimming (use tampon/cup)\n✓ Stretching\n" +
	"✓ Dance or cycling\n\n**Listen to Your Body:**\n- Rest if pain is severe\n" +
	"- Reduce intensity on heavy days\n- Hydrate more than usual\n\n" +
	"🏆 **Remember**: Olympic athletes compete during periods! You are strong and capable! 🌟"

const pubertyTemplate = "🌸 **Your First Period - Perfectly Normal!**\n\n" +
	"**What to Expect:**\n💙 Usually between ages 10-15\n" +
	"💙 Can be earlier or later (both normal!)\n💙 First periods often irregular\n" +
	"💙 May be light or heavy\n💙 Your body is healthy and developing\n\n" +
	"**How to Prepare:**\n1. Keep pads ready\n2. Track in calendar/app\n" +
	"3. Talk to trusted adult\n4. Learn about your body\n5. Ask questions without shame!\n\n" +
	"**Who to Talk To:**\n✓ Mom, aunt, trusted woman\n✓ School nurse\n✓ Doctor\n" +
	"✓ Friends (they have questions too!)\n\n" +
	"🌟 You're not alone in this journey! Open conversation reduces fear. 💕"

const emergencyTemplate = "🚨 **When to Seek Medical Help IMMEDIATELY**\n\n" +
	"**EMERGENCIES (Go to ER/Call Doctor NOW):**\n" +
	"⚠️ Soaking through pad/tampon every hour\n" +
	"⚠️ Toxic Shock Syndrome (TSS): fever, rash, dizziness\n" +
	"⚠️ Severe abdominal pain\n⚠️ Fainting or extreme weakness\n" +
	"⚠️ Heavy bleeding with dizziness\n\n**See Doctor Soon:**\n" +
	"- Period lasting more than 7 days\n- Severe pain not relieved by medication\n" +
	"- Fever during period\n- Sudden irregular bleeding\n- Passing large blood clots\n\n" +
	"**What's Normal vs NOT:**\n✅ Normal: manageable cramps, 2-7 day period\n" +
	"❌ NOT normal: debilitating pain, missing school/work\n\n" +
	"💙 Trust your instincts! If worried, seek help. You deserve proper care. 🏥"
